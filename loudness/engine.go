// SPDX-License-Identifier: EPL-2.0

package loudness

import (
	"math"

	"github.com/ik5/audfx/effect"
	"github.com/ik5/audfx/track"
	"github.com/ik5/audfx/utils"
)

// DefaultBufferCapacity bounds staging memory per channel. This is a
// performance knob only: results are identical for any capacity >= 1, only
// the block boundaries shift.
const DefaultBufferCapacity = 8192

// Perceived level gain of a mono signal played over two speakers.
const dualMonoGainDB = 3.0102999566398121 // 10*log10(2)

// Option configures an Engine.
type Option func(*Engine)

// WithMeter supplies the meter used for measurement. Required for
// MetricLoudness; MetricRMS defaults to the built-in RMSMeter.
func WithMeter(m Meter) Option {
	return func(e *Engine) { e.meter = m }
}

// WithBufferCapacity overrides the per-channel staging buffer capacity.
func WithBufferCapacity(n int) Option {
	return func(e *Engine) { e.capacity = n }
}

// TrackStatus is the per-track outcome of a batch run.
type TrackStatus int

const (
	// TrackNormalized means both passes completed and gain was applied.
	TrackNormalized TrackStatus = iota
	// TrackSkipped means the track had no measurable level (empty or
	// silent) and was left untouched.
	TrackSkipped
)

func (s TrackStatus) String() string {
	switch s {
	case TrackNormalized:
		return "normalized"
	case TrackSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// TrackResult reports one track of a batch.
type TrackResult struct {
	Status TrackStatus
	// Measured levels, one per normalized channel group, in the metric's
	// natural unit.
	Measured []float64
	// Mult is the linear multiplier applied per channel. Nil for skipped
	// tracks.
	Mult []float64
	// ClippedSamples counts samples clamped to [-1,1] during apply. A
	// non-zero count is a warning, not a failure.
	ClippedSamples int64
}

// Summary reports a whole batch run.
type Summary struct {
	Tracks []TrackResult
	// Cancelled is set when the host requested cancellation between
	// blocks. Blocks already written stay intact; Tracks holds the
	// results of tracks completed before the cancel.
	Cancelled bool
}

// Engine normalizes tracks in two streaming passes: measure, then apply.
// An Engine runs one batch at a time.
type Engine struct {
	settings Settings
	meter    Meter
	capacity int

	// progress accounting across both passes of all tracks in a batch
	blocksDone  int64
	blocksTotal int64
}

// NewEngine validates the settings and builds an engine.
func NewEngine(settings Settings, opts ...Option) (*Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{settings: settings, capacity: DefaultBufferCapacity}
	for _, opt := range opts {
		opt(e)
	}

	if e.capacity < 1 {
		return nil, ErrBufferCapacity
	}
	if e.meter == nil {
		if settings.Metric == MetricLoudness {
			return nil, ErrNoMeter
		}
		e.meter = NewRMSMeter()
	}

	return e, nil
}

// ProcessTracks runs the two-pass normalization over every track in the
// batch. progress may be nil; when supplied it receives a monotonically
// increasing fraction spanning both passes of all tracks, and returning
// false cancels the run between blocks.
func (e *Engine) ProcessTracks(tracks []track.Track, progress effect.ProgressFunc) (*Summary, error) {
	summary := &Summary{}

	e.blocksDone = 0
	e.blocksTotal = 0
	for _, t := range tracks {
		e.blocksTotal += 2 * blockCount(t.Len(), e.capacity)
	}

	for _, t := range tracks {
		res, cancelled, err := e.processTrack(t, progress)
		if err != nil {
			return summary, err
		}
		if cancelled {
			summary.Cancelled = true
			return summary, nil
		}
		summary.Tracks = append(summary.Tracks, res)
	}

	return summary, nil
}

// processTrack runs both passes over one track. The staging buffers are
// owned for the duration of the track and released on every exit path.
func (e *Engine) processTrack(t track.Track, progress effect.ProgressFunc) (TrackResult, bool, error) {
	res := TrackResult{Status: TrackSkipped}

	channels := t.Channels()
	length := t.Len()
	passBlocks := blockCount(length, e.capacity)

	if length == 0 || channels == 0 {
		e.blocksDone += 2 * passBlocks
		return res, false, nil
	}

	bufs := newTrackBuffers(channels, e.capacity)
	defer bufs.release()

	e.meter.Reset(channels, t.SampleRate())

	// Pass 1: analyze.
	cancelled, err := e.streamTrack(t, bufs, progress, func(pos int64) error {
		e.meter.Add(bufs.chans, bufs.length)
		return nil
	})
	if err != nil || cancelled {
		return res, cancelled, err
	}

	mult, measured, ok := e.computeGain(t)
	res.Measured = measured
	if !ok {
		// No defined gain: skip this track, keep the batch going. The
		// never-run second pass still counts toward progress.
		e.blocksDone += passBlocks
		return res, false, nil
	}
	res.Mult = mult

	// Pass 2: apply, re-streaming the same block boundaries.
	var clipped int64
	cancelled, err = e.streamTrack(t, bufs, progress, func(pos int64) error {
		clipped += applyGain(bufs, mult)
		return bufs.store(t, pos)
	})
	if err != nil || cancelled {
		return res, cancelled, err
	}

	res.Status = TrackNormalized
	res.ClippedSamples = clipped
	return res, false, nil
}

// streamTrack runs one full pass over the track in bounded blocks, calling
// fn once per loaded block and polling for cancellation between blocks.
func (e *Engine) streamTrack(t track.Track, bufs *trackBuffers, progress effect.ProgressFunc, fn func(pos int64) error) (bool, error) {
	length := t.Len()

	for pos := int64(0); pos < length; {
		n := e.capacity
		if int64(n) > length-pos {
			n = int(length - pos)
		}

		if err := bufs.load(t, pos, n); err != nil {
			return false, err
		}
		if err := fn(pos); err != nil {
			return false, err
		}

		pos += int64(n)
		e.blocksDone++

		if progress != nil && !progress(float64(e.blocksDone)/float64(e.blocksTotal)) {
			return true, nil
		}
	}

	return false, nil
}

// computeGain turns the pass-1 measurement into per-channel multipliers.
// Linked channels share one multiplier from a combined measurement,
// preserving inter-channel balance; independent channels each get their
// own.
func (e *Engine) computeGain(t track.Track) (mult []float64, measured []float64, ok bool) {
	channels := t.Channels()
	independent := channels >= 2 && e.settings.StereoIndependent

	if independent {
		mult = make([]float64, channels)
		for ch := 0; ch < channels; ch++ {
			v, valid := e.meter.Channel(ch)
			measured = append(measured, v)
			m, good := e.gainFor(v, valid, false)
			if !good {
				return nil, measured, false
			}
			mult[ch] = m
		}
		return mult, measured, true
	}

	v, valid := e.meter.Linked()
	measured = []float64{v}

	dualMono := channels == 1 && e.settings.DualMono
	m, good := e.gainFor(v, valid, dualMono)
	if !good {
		return nil, measured, false
	}

	mult = make([]float64, channels)
	for ch := range mult {
		mult[ch] = m
	}
	return mult, measured, true
}

// gainFor converts one measurement into a linear multiplier, or reports
// that no gain is defined (empty or silent measurement).
func (e *Engine) gainFor(measured float64, valid bool, dualMono bool) (float64, bool) {
	if !valid {
		return 0, false
	}

	switch e.settings.Metric {
	case MetricRMS:
		if measured <= 0 {
			return 0, false
		}
		return utils.DBToLinear(e.settings.TargetRMS) / measured, true
	default: // MetricLoudness
		if math.IsInf(measured, -1) || math.IsNaN(measured) {
			return 0, false
		}
		if dualMono {
			measured += dualMonoGainDB
		}
		return utils.DBToLinear(e.settings.TargetLUFS - measured), true
	}
}

// applyGain multiplies the filled buffers in place, clamping to [-1,1] and
// counting clipped samples.
func applyGain(bufs *trackBuffers, mult []float64) int64 {
	var clipped int64

	for ch := range bufs.chans {
		m := float32(mult[ch])
		block := bufs.chans[ch][:bufs.length]
		for i, v := range block {
			out := v * m
			if out > 1 {
				out = 1
				clipped++
			} else if out < -1 {
				out = -1
				clipped++
			}
			block[i] = out
		}
	}

	return clipped
}

func blockCount(length int64, capacity int) int64 {
	return (length + int64(capacity) - 1) / int64(capacity)
}
