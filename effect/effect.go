// SPDX-License-Identifier: EPL-2.0

package effect

import "sync"

// Selection describes the span of audio a generator run covers.
type Selection struct {
	// Start of the selection in seconds.
	Start float64
	// Duration of the selection in seconds.
	Duration float64
	// SampleRate in Hz.
	SampleRate float64
	// Channels count of the destination (e.g., 1=mono, 2=stereo).
	Channels int
}

// Generator produces audio block by block under the streaming contract:
// Initialize once, ProduceBlock until io.EOF, Finalize.
type Generator interface {
	// Initialize validates the configuration against the selection and
	// computes all derived values. A configuration that cannot produce
	// output returns a user-facing error and aborts the run.
	Initialize(sel Selection) error

	// ProduceBlock fills up to len(dst) samples and returns the number
	// actually produced. The count equals len(dst) except possibly at
	// stream end. io.EOF accompanies the final samples, or a zero count
	// once the stream is already exhausted.
	ProduceBlock(dst []float32) (int, error)

	// Finalize releases transient state. Idempotent; safe to call after a
	// failed Initialize.
	Finalize() error
}

// ProgressFunc reports a monotonically increasing fraction in [0,1] and
// polls for cancellation. Returning false requests the run to stop; the
// effect then reports a cancelled outcome, not an error.
type ProgressFunc func(fraction float64) bool

// Factory constructs a fresh Generator instance.
type Factory func() Generator

// Registry maps effect names to factories so a host can register and
// dispatch effects without depending on their concrete types.
type Registry struct {
	effects map[string]Factory

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		effects: make(map[string]Factory),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(name string, f Factory) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.effects[name] = f
}

func (r *Registry) Get(name string) (Factory, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	f, ok := r.effects[name]
	return f, ok
}
