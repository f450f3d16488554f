// SPDX-License-Identifier: EPL-2.0

// Package audfx provides streaming audio effects for Go applications:
// sample-exact DTMF tone generation and two-pass loudness normalization,
// plus decoders for common audio file formats.
//
// # Supported Formats
//
// The package supports decoding the following audio formats:
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// WAV is also supported for writing (16-bit PCM).
//
// # Generating DTMF Tones
//
// The simplest way to render a dial sequence is GenerateDTMF:
//
//	settings := dtmf.DefaultSettings()
//	settings.Sequence = "18005551234"
//
//	// One second of audio at 8kHz, mono
//	samples, _ := audfx.GenerateDTMF(settings, 1.0, 8000, 4096)
//
// The result is sample-exact: the length matches the requested duration
// rounded to whole samples, with tone and silence slots dividing it evenly.
// For streaming block-by-block production, use dtmf.NewGenerator and the
// effect.Generator contract directly.
//
// # Normalizing Loudness
//
// NormalizeWAV runs the two-pass normalizer over a WAV stream:
//
//	in, _ := os.Open("input.wav")
//	out, _ := os.Create("output.wav")
//
//	summary, err := audfx.NormalizeWAV(in, out, loudness.Settings{
//	    Metric:    loudness.MetricRMS,
//	    TargetRMS: -20,
//	})
//
// The first pass measures the track, the second applies a constant gain;
// silent tracks are skipped and samples that would exceed full scale are
// clamped and counted in the summary. For multi-track batches, progress
// reporting and cancellation, use loudness.NewEngine directly.
//
// # Format Decoders
//
// Each format has its own decoder:
//
//	// WAV
//	wavDecoder := wav.Decoder{}
//	src, _ := wavDecoder.Decode(reader)
//
//	// MP3
//	mp3Decoder := mp3.Decoder{}
//	src, _ := mp3Decoder.Decode(reader)
//
//	// Vorbis
//	vorbisDecoder := vorbis.Decoder{}
//	src, _ := vorbisDecoder.Decode(reader)
//
//	// AIFF
//	aiffDecoder := aiff.Decoder{}
//	src, _ := aiffDecoder.Decode(reader)
//
// All decoders return an audio.Source of interleaved float32 samples in
// [-1, 1]. NewFormatRegistry bundles them into an audio.Registry for hosts
// that dispatch by format key, and track.FromSource loads any Source into
// random-access per-channel storage for editing.
package audfx
