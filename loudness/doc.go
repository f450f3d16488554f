// SPDX-License-Identifier: EPL-2.0

// Package loudness normalizes tracks to a target RMS or integrated
// loudness level using a two-pass streaming engine.
//
// # Two Passes
//
// Pass one streams the whole selection through bounded per-channel buffers
// and feeds it to a meter; pass two re-streams the same selection in the
// same block boundaries and multiplies every sample by the computed gain.
// Memory use is O(channels x buffer capacity), independent of track length.
//
// # Usage
//
//	settings := loudness.DefaultSettings()
//	settings.Metric = loudness.MetricRMS
//	settings.TargetRMS = -20
//
//	engine, err := loudness.NewEngine(settings)
//	summary, err := engine.ProcessTracks(tracks, nil)
//
//	for _, res := range summary.Tracks {
//	    fmt.Println(res.Status)
//	}
//
// # Channel Policy
//
// A linked stereo pair is normalized with one multiplier computed from a
// combined measurement, preserving inter-channel balance. With
// StereoIndependent set, each channel is measured and normalized on its
// own. A mono track with DualMono set is treated as a dual-mono pair for
// integrated loudness: played over two speakers it is perceived about 3 LU
// louder, so the measurement is raised accordingly before the gain is
// computed.
//
// # Meters
//
// RMS measurement is built in. Integrated loudness uses a host-supplied
// Meter implementation (for example an EBU R128 meter); the engine only
// relies on the Meter contract: restartable per track and tolerant of
// blocks of varying length.
//
// # Failure Policy
//
// A silent or empty track has no defined gain: it is skipped and reported
// in the summary, and the batch continues. A multiplier that would push
// samples beyond [-1,1] is applied with clamping and the clipped-sample
// count is reported as a warning. Cancellation between blocks is a
// distinct outcome, not an error; blocks already written stay intact.
package loudness
