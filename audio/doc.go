// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming input primitives shared by the
// effect engine and the format decoders.
//
// This package contains two building blocks:
//   - Source interface for sequential audio input
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio input:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All format decoders implement this interface, so any decodable stream can
// be collected into a track (see the track package) and fed through the
// loudness engine.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// This is useful for hosts that need to support multiple input formats and
// pick the decoder from a file extension or MIME type.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without worrying
// about bit depths and ensures no clipping during intermediate processing.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. Other errors
// indicate problems with the underlying stream:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Decoding error
//	    }
//	    // Process n samples from buf
//	}
package audio
