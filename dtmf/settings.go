// SPDX-License-Identifier: EPL-2.0

package dtmf

import (
	"strings"

	"github.com/ik5/audfx/param"
)

// Parameter bounds, also declared in Params for host-side validation.
const (
	MinDutyCycle = 0.0
	MaxDutyCycle = 100.0
	MinAmplitude = 0.001
	MaxAmplitude = 1.0

	DefaultDutyCycle = 55.0
	DefaultAmplitude = 0.8
	DefaultSequence  = "0123456789"
)

// Alphabet is the set of symbols a sequence may contain. Uppercase A-D are
// the carrier extra tones; lowercase letters map to their telephone keypad
// digit group.
const Alphabet = "0123456789*#ABCDabcdefghijklmnopqrstuvwxyz"

// Settings is the per-run configuration of the generator. Sequence,
// DutyCycle and Amplitude are host-settable; NTones, Tone and Silence are
// derived by Recalculate and must not be set independently.
type Settings struct {
	// Sequence of symbols to generate, restricted to Alphabet.
	Sequence string
	// DutyCycle is the tone share of each tone+silence slot, in percent.
	DutyCycle float64
	// Amplitude of the generated tones, linear 0-1 scale.
	Amplitude float64

	// Derived values, valid after Recalculate.
	NTones  int     // number of tone slots
	Tone    float64 // tone slot length in seconds
	Silence float64 // silence slot length in seconds
}

// DefaultSettings returns the generator defaults.
func DefaultSettings() Settings {
	return Settings{
		Sequence:  DefaultSequence,
		DutyCycle: DefaultDutyCycle,
		Amplitude: DefaultAmplitude,
	}
}

// Validate checks the host-settable fields against their declared bounds.
func (s *Settings) Validate() error {
	for _, r := range s.Sequence {
		if !strings.ContainsRune(Alphabet, r) {
			return ErrInvalidSymbol
		}
	}
	if s.DutyCycle < MinDutyCycle || s.DutyCycle > MaxDutyCycle {
		return ErrDutyCycleRange
	}
	if s.Amplitude < MinAmplitude || s.Amplitude > MaxAmplitude {
		return ErrAmplitudeRange
	}
	return nil
}

// Recalculate derives NTones, Tone and Silence from the sequence, the duty
// cycle and the selection duration. It must be re-run whenever any of the
// three changes. The returned value is the duration the run will actually
// cover: an empty sequence collapses it to zero.
func (s *Settings) Recalculate(duration float64) float64 {
	s.NTones = len(s.Sequence)

	switch {
	case s.NTones == 0:
		// Empty sequence: no tones, no silence, no samples.
		s.Tone = 0
		s.Silence = 0
		return 0
	case s.NTones == 1:
		// A single tone fills the whole selection, no silence slot.
		s.Tone = duration
		s.Silence = 0
		return duration
	default:
		// The selection divides into NTones tone slots and NTones-1
		// silence slots (the sequence never ends in silence), each sized
		// by the duty cycle:
		//   slot = duration / (NTones + duty/100 - 1)
		slot := duration / (float64(s.NTones) + (s.DutyCycle / 100.0) - 1)
		s.Tone = slot * (s.DutyCycle / 100.0)
		s.Silence = slot * (1.0 - (s.DutyCycle / 100.0))
		return duration
	}
}

// Params describes the host-settable fields in declaration order.
func Params() []param.Field {
	return []param.Field{
		{Name: "Sequence", Kind: param.String, DefString: DefaultSequence, Alphabet: Alphabet},
		{Name: "DutyCycle", Kind: param.Float, Def: DefaultDutyCycle, Min: MinDutyCycle, Max: MaxDutyCycle},
		{Name: "Amplitude", Kind: param.Float, Def: DefaultAmplitude, Min: MinAmplitude, Max: MaxAmplitude},
	}
}
