// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV (RIFF) audio decoding and encoding.
//
// It uses the github.com/go-audio/wav library for robust WAV parsing. The
// Decoder accepts PCM files of 8, 16, 24 or 32 bits per sample, at any
// channel count and sample rate, and exposes them as an audio.Source of
// normalized float32 samples. Inputs that do not implement io.ReadSeeker
// are buffered in memory first.
//
// WriteWAV16 is the matching encoder for the common case: it writes
// interleaved 16-bit PCM as a canonical 44-byte-header WAV file.
package wav
