// SPDX-License-Identifier: EPL-2.0

package audfx

import (
	"fmt"
	"io"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/formats/aiff"
	"github.com/ik5/audfx/formats/mp3"
	"github.com/ik5/audfx/formats/vorbis"
	"github.com/ik5/audfx/formats/wav"
	"github.com/ik5/audfx/loudness"
	"github.com/ik5/audfx/track"
	"github.com/ik5/audfx/utils"
)

// NewFormatRegistry returns a decoder registry with every built-in format
// registered under its conventional key.
func NewFormatRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg vorbis", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	return r
}

// Normalize drains src into an in-memory track and runs two-pass loudness
// normalization over it. The source is read to the end but not closed.
func Normalize(src audio.Source, settings loudness.Settings, opts ...loudness.Option) (*track.MemTrack, *loudness.Summary, error) {
	tr, err := track.FromSource(src)
	if err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}

	engine, err := loudness.NewEngine(settings, opts...)
	if err != nil {
		return nil, nil, err
	}

	summary, err := engine.ProcessTracks([]track.Track{tr}, nil)
	if err != nil {
		return nil, nil, err
	}

	return tr, summary, nil
}

// NormalizeWAV decodes a WAV stream from r, normalizes it, and writes the
// result to w as 16-bit PCM WAV at the source's rate and channel count.
func NormalizeWAV(r io.Reader, w io.Writer, settings loudness.Settings, opts ...loudness.Option) (*loudness.Summary, error) {
	src, err := wav.Decoder{}.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer src.Close()

	tr, summary, err := Normalize(src, settings, opts...)
	if err != nil {
		return nil, err
	}

	if err := wav.WriteWAV16(w, tr.SampleRate(), tr.Channels(), interleave16(tr)); err != nil {
		return nil, err
	}

	return summary, nil
}

// interleave16 flattens per-channel track storage back into interleaved
// 16-bit PCM frames.
func interleave16(tr *track.MemTrack) []int16 {
	channels := tr.Channels()
	length := int(tr.Len())

	pcm := make([]int16, length*channels)
	for ch := 0; ch < channels; ch++ {
		data := tr.Channel(ch)
		for i := 0; i < length; i++ {
			pcm[i*channels+ch] = utils.Float32ToInt16(data[i])
		}
	}
	return pcm
}
