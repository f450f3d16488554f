// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidDstSize indicates a destination slice too small to hold
	// even one interleaved frame. Decoders that read whole frames return
	// it instead of splitting a frame across calls.
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
)
