// SPDX-License-Identifier: EPL-2.0

// Package track defines the sample storage contract the loudness engine
// reads from and writes back to.
//
// # Track Interface
//
// A Track exposes random access to contiguous sample ranges, addressed by
// integer sample position and length, per channel:
//
//	type Track interface {
//	    SampleRate() int
//	    Channels() int
//	    Len() int64
//	    ReadRange(ch int, pos int64, dst []float32) (int, error)
//	    WriteRange(ch int, pos int64, src []float32) error
//	}
//
// The engine never loads a whole track into memory; it stages bounded
// blocks through per-channel buffers, so any backing store (memory, file,
// database) can implement the interface.
//
// # MemTrack
//
// MemTrack is the in-memory implementation used by the convenience
// functions and the test suite:
//
//	tr := track.NewMemTrack(44100, 2, 44100)
//	n, err := tr.ReadRange(0, 0, buf)
//
// # Collecting a Source
//
// FromSource drains an audio.Source into a new MemTrack, deinterleaving
// samples into per-channel storage:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	tr, err := track.FromSource(src)
package track
