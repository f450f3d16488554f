// SPDX-License-Identifier: EPL-2.0

package audfx

import (
	"fmt"
	"io"

	"github.com/ik5/audfx/dtmf"
	"github.com/ik5/audfx/effect"
	"github.com/ik5/audfx/formats/wav"
	"github.com/ik5/audfx/utils"
)

// GenerateDTMF is a high-level convenience function that renders a DTMF
// tone sequence as mono float32 samples in [-1, 1].
//
// It runs the full generator lifecycle: Initialize against a selection of
// the given duration, ProduceBlock in blockSize chunks until the stream
// ends, Finalize. The result holds exactly the selection's sample count
// regardless of blockSize.
//
// For block-by-block streaming, or to place the selection at a non-zero
// start time, use dtmf.NewGenerator directly.
func GenerateDTMF(settings dtmf.Settings, duration float64, sampleRate, blockSize int) ([]float32, error) {
	if blockSize <= 0 {
		blockSize = 4096
	}

	gen := dtmf.NewGenerator(settings)
	sel := effect.Selection{
		Duration:   duration,
		SampleRate: float64(sampleRate),
		Channels:   1,
	}
	if err := gen.Initialize(sel); err != nil {
		return nil, err
	}
	defer gen.Finalize()

	out := make([]float32, 0, gen.Total())
	buf := make([]float32, blockSize)

	for {
		n, err := gen.ProduceBlock(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return out, nil
}

// WriteDTMFWAV renders a DTMF tone sequence and writes it as a mono 16-bit
// PCM WAV file.
func WriteDTMFWAV(w io.Writer, settings dtmf.Settings, duration float64, sampleRate int) error {
	samples, err := GenerateDTMF(settings, duration, sampleRate, 4096)
	if err != nil {
		return err
	}

	pcm := make([]int16, len(samples))
	for i, v := range samples {
		pcm[i] = utils.Float32ToInt16(v)
	}

	return wav.WriteWAV16(w, sampleRate, 1, pcm)
}
