// SPDX-License-Identifier: EPL-2.0

package track

import "errors"

var (
	// ErrOutOfRange indicates a read or write outside the track bounds.
	ErrOutOfRange = errors.New("sample range out of track bounds")

	// ErrBadChannel indicates a channel index outside the track layout.
	ErrBadChannel = errors.New("channel index out of range")
)
