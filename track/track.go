// SPDX-License-Identifier: EPL-2.0

package track

import (
	"fmt"
	"io"

	"github.com/ik5/audfx/audio"
)

// Track is random-access sample storage for one audio clip. Positions and
// lengths are in samples per channel; samples are float32 in [-1,1].
type Track interface {
	// SampleRate of the stored audio in Hz.
	SampleRate() int
	// Channels count.
	Channels() int
	// Len is the total number of samples per channel.
	Len() int64
	// ReadRange copies up to len(dst) samples of channel ch starting at
	// pos into dst and returns the number copied.
	ReadRange(ch int, pos int64, dst []float32) (int, error)
	// WriteRange copies src into channel ch starting at pos. The whole
	// range must fit inside the track.
	WriteRange(ch int, pos int64, src []float32) error
}

// MemTrack keeps all samples in memory, one slice per channel.
type MemTrack struct {
	sampleRate int
	data       [][]float32
}

// NewMemTrack allocates a zeroed track of length samples per channel.
func NewMemTrack(sampleRate, channels int, length int64) *MemTrack {
	data := make([][]float32, channels)
	for ch := range data {
		data[ch] = make([]float32, length)
	}
	return &MemTrack{sampleRate: sampleRate, data: data}
}

func (t *MemTrack) SampleRate() int { return t.sampleRate }
func (t *MemTrack) Channels() int   { return len(t.data) }

func (t *MemTrack) Len() int64 {
	if len(t.data) == 0 {
		return 0
	}
	return int64(len(t.data[0]))
}

func (t *MemTrack) ReadRange(ch int, pos int64, dst []float32) (int, error) {
	if ch < 0 || ch >= len(t.data) {
		return 0, ErrBadChannel
	}
	if pos < 0 || pos > t.Len() {
		return 0, ErrOutOfRange
	}
	n := copy(dst, t.data[ch][pos:])
	return n, nil
}

func (t *MemTrack) WriteRange(ch int, pos int64, src []float32) error {
	if ch < 0 || ch >= len(t.data) {
		return ErrBadChannel
	}
	if pos < 0 || pos+int64(len(src)) > t.Len() {
		return ErrOutOfRange
	}
	copy(t.data[ch][pos:], src)
	return nil
}

// Channel returns the backing slice for channel ch. Intended for tests and
// encoders; mutating it mutates the track.
func (t *MemTrack) Channel(ch int) []float32 {
	return t.data[ch]
}

// FromSource drains src into a new MemTrack, deinterleaving samples into
// per-channel storage. The source is read to io.EOF but not closed.
func FromSource(src audio.Source) (*MemTrack, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrBadChannel
	}

	data := make([][]float32, channels)
	buf := make([]float32, 4096*channels)
	// leftover holds a partial frame split across two reads
	var leftover []float32

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			chunk := buf[:n]
			if len(leftover) > 0 {
				chunk = append(leftover, chunk...)
				leftover = nil
			}
			frames := len(chunk) / channels
			for f := 0; f < frames; f++ {
				for ch := 0; ch < channels; ch++ {
					data[ch] = append(data[ch], chunk[f*channels+ch])
				}
			}
			if rem := len(chunk) % channels; rem != 0 {
				leftover = append(leftover, chunk[len(chunk)-rem:]...)
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return &MemTrack{sampleRate: src.SampleRate(), data: data}, nil
}
