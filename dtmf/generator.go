// SPDX-License-Identifier: EPL-2.0

package dtmf

import (
	"io"
	"math"

	"github.com/ik5/audfx/effect"
)

// The remainder redistribution loop converges in one pass for sane inputs;
// anything needing more than this many passes is a consistency failure.
const maxRedistribute = 1000

// Generator renders a DTMF settings struct as a sample stream under the
// effect.Generator contract. One instance covers one run.
type Generator struct {
	settings Settings

	rate     float64
	total    int64 // exact sample count of the whole selection
	toneN    int64 // nominal samples per tone slot
	silenceN int64 // nominal samples per silence slot
	diff     int64 // unallocated samples still to distribute

	seqPos    int   // index of the current symbol in the sequence
	isTone    bool  // current slot kind, flips tone/silence
	remaining int64 // samples left in the current slot
	tonePos   int64 // elapsed samples within the current tone
	produced  int64
	ready     bool
}

// NewGenerator returns a generator for the given settings. Initialize
// validates them and derives the segmentation.
func NewGenerator(settings Settings) *Generator {
	return &Generator{settings: settings}
}

// Initialize computes the sample-exact segmentation of the selection.
//
// All slot lengths are floor-rounded under-estimates; the difference to the
// exact selection length is redistributed, first in whole per-slot
// increments, then one sample at a time as slots start. The sum of all slot
// lengths equals the selection length exactly.
func (g *Generator) Initialize(sel effect.Selection) error {
	g.ready = false

	if err := g.settings.Validate(); err != nil {
		return err
	}

	duration := g.settings.Recalculate(sel.Duration)
	if g.settings.NTones <= 0 {
		return ErrEmptySequence
	}

	g.rate = sel.SampleRate

	// The selection is quantised to sample positions at both ends, so the
	// exact count is the difference of the rounded boundaries.
	n0 := int64(math.Floor(sel.Start*sel.SampleRate + 0.5))
	n1 := int64(math.Floor((sel.Start+duration)*sel.SampleRate + 0.5))
	g.total = n1 - n0

	g.toneN = int64(math.Floor(g.settings.Tone * g.rate))
	g.silenceN = int64(math.Floor(g.settings.Silence * g.rate))

	nTones := int64(g.settings.NTones)
	g.diff = g.total - nTones*g.toneN - (nTones-1)*g.silenceN

	// More than one spare sample per slot on average: grow the slot
	// lengths by the whole per-slot share and recompute.
	for iter := 0; g.diff > 2*nTones-1; iter++ {
		if iter >= maxRedistribute {
			return ErrInconsistentSegmentation
		}
		g.toneN += g.diff / nTones
		if nTones > 1 {
			g.silenceN += g.diff / (nTones - 1)
		}
		g.diff = g.total - nTones*g.toneN - (nTones-1)*g.silenceN
	}
	if g.diff < 0 {
		return ErrInconsistentSegmentation
	}

	g.seqPos = -1
	g.isTone = false
	g.remaining = 0
	g.tonePos = 0
	g.produced = 0
	g.ready = true

	return nil
}

// ProduceBlock fills dst with the next samples of the sequence, alternating
// tone and silence slots. A slot is generally longer than one block, so a
// single slot may span several calls; the tonePos offset keeps the
// synthesis phase-continuous across them.
//
// Returns the number of samples produced; io.EOF accompanies the call that
// produces the last sample and every call after it.
func (g *Generator) ProduceBlock(dst []float32) (int, error) {
	if !g.ready {
		return 0, effect.ErrNotInitialized
	}
	if g.produced >= g.total {
		return 0, io.EOF
	}

	size := len(dst)
	if int64(size) > g.total-g.produced {
		size = int(g.total - g.produced)
	}

	buf := dst[:size]
	processed := 0

	for len(buf) > 0 {
		if g.remaining == 0 {
			g.isTone = !g.isTone

			if g.isTone {
				g.seqPos++
				if g.seqPos >= g.settings.NTones {
					return processed, ErrInconsistentSegmentation
				}
				g.remaining = g.toneN
				g.tonePos = 0
			} else {
				g.remaining = g.silenceN
			}

			// One spare sample from the diff bin per newly started
			// slot, until depletion.
			if g.diff > 0 {
				g.remaining++
				g.diff--
			}
		}

		n := len(buf)
		if int64(n) > g.remaining {
			n = int(g.remaining)
		}

		if g.isTone {
			makeTone(buf[:n], g.rate, g.settings.Sequence[g.seqPos],
				g.tonePos, g.toneN, g.settings.Amplitude)
			g.tonePos += int64(n)
		} else {
			for i := 0; i < n; i++ {
				buf[i] = 0
			}
		}

		g.remaining -= int64(n)
		buf = buf[n:]
		processed += n
	}

	g.produced += int64(processed)
	if g.produced >= g.total {
		return processed, io.EOF
	}

	return processed, nil
}

// Finalize releases the run state. Idempotent; safe after a failed
// Initialize.
func (g *Generator) Finalize() error {
	g.ready = false
	return nil
}

// Total is the exact sample count the run will produce. Valid after a
// successful Initialize.
func (g *Generator) Total() int64 {
	return g.total
}
