// SPDX-License-Identifier: EPL-2.0

package loudness

import (
	"errors"
	"testing"

	"github.com/ik5/audfx/track"
)

func TestTrackBuffers_LoadStoreRoundTrip(t *testing.T) {
	t.Parallel()

	tr := track.NewMemTrack(8000, 2, 64)
	left := make([]float32, 64)
	right := make([]float32, 64)
	for i := range left {
		left[i] = float32(i) / 64
		right[i] = -float32(i) / 64
	}
	if err := tr.WriteRange(0, 0, left); err != nil {
		t.Fatalf("WriteRange() error = %v", err)
	}
	if err := tr.WriteRange(1, 0, right); err != nil {
		t.Fatalf("WriteRange() error = %v", err)
	}

	bufs := newTrackBuffers(2, 16)
	if got := bufs.capacity(); got != 16 {
		t.Fatalf("capacity() = %d, want 16", got)
	}

	if err := bufs.load(tr, 16, 16); err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if bufs.length != 16 {
		t.Fatalf("length = %d after load, want 16", bufs.length)
	}
	if bufs.chans[0][0] != left[16] || bufs.chans[1][0] != right[16] {
		t.Errorf("loaded wrong region: %v, %v", bufs.chans[0][0], bufs.chans[1][0])
	}

	for i := range bufs.chans[0][:bufs.length] {
		bufs.chans[0][i] *= 2
		bufs.chans[1][i] *= 2
	}
	if err := bufs.store(tr, 16); err != nil {
		t.Fatalf("store() error = %v", err)
	}

	got := tr.Channel(0)
	if got[16] != left[16]*2 {
		t.Errorf("stored sample = %v, want %v", got[16], left[16]*2)
	}
	// Neighbors outside the block are untouched.
	if got[15] != left[15] || got[32] != left[32] {
		t.Error("store touched samples outside the block")
	}
}

func TestTrackBuffers_LoadPastEnd(t *testing.T) {
	t.Parallel()

	tr := track.NewMemTrack(8000, 1, 10)
	bufs := newTrackBuffers(1, 16)

	if err := bufs.load(tr, 8, 16); !errors.Is(err, track.ErrOutOfRange) {
		t.Errorf("load() past end = %v, want %v", err, track.ErrOutOfRange)
	}
}

func TestTrackBuffers_Release(t *testing.T) {
	t.Parallel()

	bufs := newTrackBuffers(2, 8)
	bufs.length = 4
	bufs.release()

	if bufs.chans != nil || bufs.length != 0 {
		t.Error("release() left buffers live")
	}
	if bufs.capacity() != 0 {
		t.Errorf("capacity() = %d after release, want 0", bufs.capacity())
	}
}
