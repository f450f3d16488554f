// SPDX-License-Identifier: EPL-2.0

// Package effect defines the lifecycle every block-based effect obeys.
//
// # Generator Contract
//
// A Generator produces audio one block at a time:
//
//	type Generator interface {
//	    Initialize(sel Selection) error
//	    ProduceBlock(dst []float32) (int, error)
//	    Finalize() error
//	}
//
// The host calls Initialize exactly once per run, then ProduceBlock
// repeatedly until io.EOF, then Finalize. There is no a-priori bound on the
// number of calls, and the requested block length may vary between calls.
// ProduceBlock never blocks; the caller decides pacing and threading.
//
// Initialize validates the configuration and computes all derived values. If
// the configuration cannot produce any output, Initialize returns an error
// that the host should surface to the user, and the run is aborted before
// any samples are produced. Finalize is idempotent and safe to call after a
// failed Initialize.
//
// # Progress and Cancellation
//
// Long-running effects poll a host-supplied ProgressFunc between blocks. The
// reported fraction increases monotonically across the whole run. Returning
// false requests cancellation: the effect releases its buffers and reports a
// cancelled outcome, never an error. Blocks already committed stay intact.
//
// # Registry
//
// The Registry maps effect names to factories so a host can register and
// dispatch effects polymorphically:
//
//	registry := effect.NewRegistry()
//	registry.Register("dtmf", func() effect.Generator { return dtmf.NewGenerator(settings) })
//	factory, _ := registry.Get("dtmf")
//	gen := factory()
package effect
