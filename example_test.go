// SPDX-License-Identifier: EPL-2.0

package audfx_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/audfx"
	"github.com/ik5/audfx/dtmf"
	"github.com/ik5/audfx/formats/wav"
	"github.com/ik5/audfx/loudness"
)

// Example_generateDTMF renders a three-second dial sequence.
func Example_generateDTMF() {
	settings := dtmf.DefaultSettings()
	settings.Sequence = "123"

	samples, err := audfx.GenerateDTMF(settings, 3.0, 8000, 4096)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Generated %d samples\n", len(samples))
	// Output: Generated 24000 samples
}

// Example_normalizeWAV normalizes a quarter-scale WAV file to -20 dB RMS.
func Example_normalizeWAV() {
	// A second of constant quarter-scale mono audio
	pcm := make([]int16, 8000)
	for i := range pcm {
		pcm[i] = 8192
	}
	in := new(bytes.Buffer)
	wav.WriteWAV16(in, 8000, 1, pcm)

	out := new(bytes.Buffer)
	summary, err := audfx.NormalizeWAV(in, out, loudness.Settings{
		Metric:    loudness.MetricRMS,
		TargetRMS: -20,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	res := summary.Tracks[0]
	fmt.Printf("%s, gain %.2fx\n", res.Status, res.Mult[0])
	// Output: normalized, gain 0.40x
}

// ExampleNewFormatRegistry lists the built-in decoders.
func ExampleNewFormatRegistry() {
	registry := audfx.NewFormatRegistry()

	for _, key := range []string{"wav", "mp3", "ogg vorbis", "aiff"} {
		_, ok := registry.Get(key)
		fmt.Printf("%s: %v\n", key, ok)
	}
	// Output:
	// wav: true
	// mp3: true
	// ogg vorbis: true
	// aiff: true
}
