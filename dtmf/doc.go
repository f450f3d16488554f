// SPDX-License-Identifier: EPL-2.0

// Package dtmf generates dual-tone multi-frequency (DTMF) tone sequences,
// like those produced by a telephone keypad.
//
// # Overview
//
// A sequence of symbols (digits, '*', '#', the carrier tones A-D, and
// lowercase keypad letters) is rendered as alternating tone and silence
// slots. The duty cycle sets the tone/silence ratio; the requested duration
// is honored to the exact sample, with rounding remainders redistributed
// one sample at a time across the slots.
//
// # Usage
//
//	settings := dtmf.DefaultSettings()
//	settings.Sequence = "123"
//	settings.DutyCycle = 50
//
//	gen := dtmf.NewGenerator(settings)
//	err := gen.Initialize(effect.Selection{Duration: 3.0, SampleRate: 8000, Channels: 1})
//	if err != nil {
//	    // e.g. dtmf.ErrEmptySequence — nothing to generate
//	}
//
//	buf := make([]float32, 4096)
//	for {
//	    n, err := gen.ProduceBlock(buf)
//	    // consume buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	}
//	gen.Finalize()
//
// # Exactness Guarantees
//
// The generator produces exactly floor((start+duration)*rate+0.5) -
// floor(start*rate+0.5) samples, regardless of block sizes. Tones are
// phase-continuous across block boundaries, and each tone edge carries a
// 4 ms linear fade to suppress clicking.
package dtmf
