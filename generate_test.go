// SPDX-License-Identifier: EPL-2.0

package audfx

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audfx/dtmf"
	"github.com/ik5/audfx/formats/wav"
)

func TestGenerateDTMF_ExactLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		duration   float64
		sampleRate int
		want       int
	}{
		{"one second at 8k", 1.0, 8000, 8000},
		{"three seconds at 8k", 3.0, 8000, 24000},
		{"half second at 44.1k", 0.5, 44100, 22050},
		{"fractional boundary", 0.1001, 8000, 801},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			samples, err := GenerateDTMF(dtmf.DefaultSettings(), tt.duration, tt.sampleRate, 4096)
			if err != nil {
				t.Fatalf("GenerateDTMF() error = %v", err)
			}
			if len(samples) != tt.want {
				t.Errorf("len(samples) = %d, want %d", len(samples), tt.want)
			}
		})
	}
}

func TestGenerateDTMF_BlockSizeDoesNotChangeLength(t *testing.T) {
	t.Parallel()

	settings := dtmf.DefaultSettings()
	settings.Sequence = "123"

	for _, blockSize := range []int{0, 1, 7, 512, 100000} {
		samples, err := GenerateDTMF(settings, 1.0, 8000, blockSize)
		if err != nil {
			t.Fatalf("GenerateDTMF(blockSize=%d) error = %v", blockSize, err)
		}
		if len(samples) != 8000 {
			t.Errorf("blockSize %d: len = %d, want 8000", blockSize, len(samples))
		}
	}
}

func TestGenerateDTMF_AmplitudeBound(t *testing.T) {
	t.Parallel()

	settings := dtmf.DefaultSettings()
	settings.Amplitude = 1.0

	samples, err := GenerateDTMF(settings, 0.5, 8000, 4096)
	if err != nil {
		t.Fatalf("GenerateDTMF() error = %v", err)
	}

	for i, v := range samples {
		if v < -1 || v > 1 {
			t.Fatalf("sample %d = %v out of [-1,1]", i, v)
		}
	}
}

func TestGenerateDTMF_InvalidSettings(t *testing.T) {
	t.Parallel()

	settings := dtmf.DefaultSettings()
	settings.DutyCycle = 150

	if _, err := GenerateDTMF(settings, 1.0, 8000, 4096); !errors.Is(err, dtmf.ErrDutyCycleRange) {
		t.Errorf("GenerateDTMF() error = %v, want %v", err, dtmf.ErrDutyCycleRange)
	}

	settings = dtmf.DefaultSettings()
	settings.Sequence = ""
	if _, err := GenerateDTMF(settings, 1.0, 8000, 4096); !errors.Is(err, dtmf.ErrEmptySequence) {
		t.Errorf("GenerateDTMF() error = %v, want %v", err, dtmf.ErrEmptySequence)
	}
}

func TestWriteDTMFWAV_RoundTrip(t *testing.T) {
	t.Parallel()

	settings := dtmf.DefaultSettings()
	settings.Sequence = "42"

	buf := new(bytes.Buffer)
	if err := WriteDTMFWAV(buf, settings, 1.0, 8000); err != nil {
		t.Fatalf("WriteDTMFWAV() error = %v", err)
	}

	src, err := wav.Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	total := 0
	read := make([]float32, 4096)
	for {
		n, err := src.ReadSamples(read)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != 8000 {
		t.Errorf("decoded %d samples, want 8000", total)
	}
}

func TestWriteDTMFWAV_InvalidSettings(t *testing.T) {
	t.Parallel()

	settings := dtmf.DefaultSettings()
	settings.Amplitude = 5

	buf := new(bytes.Buffer)
	if err := WriteDTMFWAV(buf, settings, 1.0, 8000); !errors.Is(err, dtmf.ErrAmplitudeRange) {
		t.Errorf("WriteDTMFWAV() error = %v, want %v", err, dtmf.ErrAmplitudeRange)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes despite invalid settings", buf.Len())
	}
}
