// SPDX-License-Identifier: EPL-2.0

package loudness

import (
	"fmt"

	"github.com/ik5/audfx/track"
)

// trackBuffers stages bounded per-channel sample blocks between track
// storage and the passes. One instance serves both passes of one track;
// capacity is fixed for that lifetime and the buffers are reused across
// blocks, never reallocated mid-track.
type trackBuffers struct {
	chans  [][]float32
	length int // filled samples per channel, <= capacity
}

func newTrackBuffers(channels, capacity int) *trackBuffers {
	chans := make([][]float32, channels)
	for ch := range chans {
		chans[ch] = make([]float32, capacity)
	}
	return &trackBuffers{chans: chans}
}

func (b *trackBuffers) capacity() int {
	if len(b.chans) == 0 {
		return 0
	}
	return len(b.chans[0])
}

// load fills the buffers with n samples per channel starting at pos and
// records the filled length. Contents are only valid after a load.
func (b *trackBuffers) load(t track.Track, pos int64, n int) error {
	for ch := range b.chans {
		got, err := t.ReadRange(ch, pos, b.chans[ch][:n])
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		if got != n {
			return fmt.Errorf("%w", track.ErrOutOfRange)
		}
	}
	b.length = n
	return nil
}

// store writes the filled portion of the buffers back starting at pos.
func (b *trackBuffers) store(t track.Track, pos int64) error {
	for ch := range b.chans {
		if err := t.WriteRange(ch, pos, b.chans[ch][:b.length]); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

// release drops the buffers; the engine allocates fresh ones per track.
func (b *trackBuffers) release() {
	b.chans = nil
	b.length = 0
}
