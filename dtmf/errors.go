// SPDX-License-Identifier: EPL-2.0

package dtmf

import "errors"

var (
	// ErrEmptySequence indicates the tone sequence has no symbols, so no
	// samples can be generated. Hosts should surface this to the user.
	ErrEmptySequence = errors.New("DTMF sequence is empty")

	// ErrInvalidSymbol indicates the sequence contains characters outside
	// the DTMF alphabet.
	ErrInvalidSymbol = errors.New("DTMF sequence contains unsupported symbols")

	// ErrDutyCycleRange indicates a duty cycle outside [0,100] percent.
	ErrDutyCycleRange = errors.New("duty cycle must be between 0 and 100 percent")

	// ErrAmplitudeRange indicates an amplitude outside [0.001,1.0].
	ErrAmplitudeRange = errors.New("amplitude must be between 0.001 and 1.0")

	// ErrInconsistentSegmentation indicates the sample segmentation failed
	// to converge or lost samples. This is an internal consistency failure,
	// never a user error.
	ErrInconsistentSegmentation = errors.New("tone segmentation lost sample consistency")
)
