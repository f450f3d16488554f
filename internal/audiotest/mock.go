// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides mock sample sources for tests. The sources
// satisfy audio.Source without importing it, so every package in the module
// can use them.
package audiotest

import (
	"io"
	"math"
)

// MockSource streams a synthetic waveform, totalSamples per channel, then
// reports io.EOF alongside the final samples.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int
	generated    int
	waveform     func(sample, channel int) float32
}

// NewMockSource builds a source from an arbitrary waveform function, called
// once per (sample, channel) pair.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource streams all-zero samples.
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample, channel int) float32 {
		return 0.0
	})
}

// NewSineSource streams a full-scale sine wave of the given frequency.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource streams a fixed sample value, handy for exact-gain
// assertions.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample, channel int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

// ReadSamples fills dst with whole interleaved frames; a partial trailing
// frame in dst is left unused.
func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if remaining := m.totalSamples - m.generated; frames > remaining {
		frames = remaining
	}

	for frame := 0; frame < frames; frame++ {
		sampleIndex := m.generated + frame
		for ch := 0; ch < m.channels; ch++ {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += frames
	written := frames * m.channels

	if m.generated >= m.totalSamples {
		return written, io.EOF
	}
	return written, nil
}
