// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audfx/audio"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate   int
	channels     int
	samples      []float32
	offset       int
	returnErrors bool
}

func (m *mockOggVorbisReader) SampleRate() int {
	return m.sampleRate
}

func (m *mockOggVorbisReader) Channels() int {
	return m.channels
}

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	// The real reader returns whole frames: a sample count that is a
	// multiple of the channel count.
	n := len(buf) - len(buf)%m.channels
	if avail := len(m.samples) - m.offset; n > avail {
		n = avail - avail%m.channels
	}

	copy(buf, m.samples[m.offset:m.offset+n])
	m.offset += n

	if m.offset >= len(m.samples) {
		return n, io.EOF
	}

	return n, nil
}

func newMockSource(sampleRate, channels int, samples []float32) *source {
	return &source{
		dec: &mockOggVorbisReader{
			sampleRate: sampleRate,
			channels:   channels,
			samples:    samples,
		},
		sampleRate: sampleRate,
		channels:   channels,
		frameBuf:   make([]float32, 4096),
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	invalidData := []byte("This is not Ogg Vorbis data")

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(invalidData))

	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newMockSource(44100, 2, make([]float32, 100))

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	// vorbis already delivers float32, so samples pass through unscaled.
	testSamples := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}
	src := newMockSource(8000, 2, testSamples)

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 8 {
		t.Fatalf("ReadSamples() n = %d, want 8", n)
	}

	for i, want := range testSamples {
		if dst[i] != want {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}

	// Next call finds the stream exhausted.
	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after drain = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_WholeFramesOnly(t *testing.T) {
	t.Parallel()

	// A 5-slot destination on a stereo stream holds two whole frames;
	// the trailing slot stays unused rather than splitting a frame.
	src := newMockSource(8000, 2, []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6})

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Errorf("ReadSamples() n = %d, want 4 (two stereo frames)", n)
	}
}

func TestSource_ReadSamples_TooSmallForFrame(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 2, []float32{0.1, 0.2})

	// One slot cannot hold a stereo frame.
	dst := make([]float32, 1)
	if _, err := src.ReadSamples(dst); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want %v", err, audio.ErrInvalidDstSize)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 2, make([]float32, 100))

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_PartialReads(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 10)
	for i := range samples {
		samples[i] = float32(i) / 10
	}
	src := newMockSource(8000, 2, samples)

	dst := make([]float32, 4)
	for call, want := range []int{4, 4} {
		n, err := src.ReadSamples(dst)
		if n != want || err != nil {
			t.Fatalf("call %d: ReadSamples() = (%d, %v), want (%d, nil)", call, n, err, want)
		}
	}

	// The final frame arrives together with io.EOF.
	n, err := src.ReadSamples(dst)
	if n != 2 || err != io.EOF {
		t.Errorf("final ReadSamples() = (%d, %v), want (2, io.EOF)", n, err)
	}
}

func TestSource_DrainAcrossBlocks(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 1000)
	for i := range samples {
		samples[i] = float32(i%1000) / 1000
	}
	src := newMockSource(44100, 2, samples)

	dst := make([]float32, 256)
	total := 0
	for {
		n, err := src.ReadSamples(dst)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
		if n == 0 {
			t.Fatal("ReadSamples() returned 0 samples without EOF")
		}
	}

	if total != len(samples) {
		t.Errorf("drained %d samples, want %d", total, len(samples))
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggVorbisReader{channels: 2, returnErrors: true},
		sampleRate: 8000,
		channels:   2,
		frameBuf:   make([]float32, 64),
	}

	dst := make([]float32, 10)
	if _, err := src.ReadSamples(dst); err == nil {
		t.Error("ReadSamples() error = nil, want decoder error")
	}
}

func TestSource_FrameBufResize(t *testing.T) {
	t.Parallel()

	src := &source{
		dec: &mockOggVorbisReader{
			sampleRate: 44100,
			channels:   2,
			samples:    make([]float32, 1000),
		},
		sampleRate: 44100,
		channels:   2,
		frameBuf:   make([]float32, 16),
	}
	initialCap := cap(src.frameBuf)

	dst := make([]float32, 1000)
	if _, err := src.ReadSamples(dst); err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if cap(src.frameBuf) <= initialCap {
		t.Errorf("frameBuf capacity = %d, want > %d after resize", cap(src.frameBuf), initialCap)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]float32, 44100*10)
	for i := range samples {
		samples[i] = float32(i%1000) / 1000
	}
	src := newMockSource(44100, 2, samples)

	dst := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		src.dec.(*mockOggVorbisReader).offset = 0
		_, _ = src.ReadSamples(dst)
	}
}

func BenchmarkSource_FullDrain(b *testing.B) {
	samples := make([]float32, 44100)
	for i := range samples {
		samples[i] = float32(i%1000) / 1000
	}

	src := newMockSource(44100, 2, samples)
	dst := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		src.dec.(*mockOggVorbisReader).offset = 0
		for {
			if _, err := src.ReadSamples(dst); err == io.EOF {
				break
			}
		}
	}
}
