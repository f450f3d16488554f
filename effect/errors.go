// SPDX-License-Identifier: EPL-2.0

package effect

import "errors"

var (
	// ErrNotInitialized indicates ProduceBlock was called before a
	// successful Initialize.
	ErrNotInitialized = errors.New("effect not initialized")
)
