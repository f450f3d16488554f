// SPDX-License-Identifier: EPL-2.0

package loudness

import "math"

// Meter accumulates a loudness statistic over sequential sample blocks.
//
// The engine feeds one track per run: Reset, then Add for every block in
// stream order (block lengths may vary), then reads the result. Channel
// reports one value per channel for independent normalization; Linked
// reports one combined value for the whole channel group.
//
// Implementations report in their metric's natural unit: linear RMS for an
// RMS meter, LUFS for an integrated loudness meter. The boolean result is
// false when no valid measurement exists (no samples, or silence for
// metrics with no defined level).
type Meter interface {
	Reset(channels, sampleRate int)
	Add(blocks [][]float32, n int)
	Channel(ch int) (float64, bool)
	Linked() (float64, bool)
}

// RMSMeter measures per-channel root mean square levels. The linked value
// is the greater of the channel values, so a linked stereo pair is driven
// by its louder channel.
type RMSMeter struct {
	sumsq []float64
	count int64
}

func NewRMSMeter() *RMSMeter {
	return &RMSMeter{}
}

func (m *RMSMeter) Reset(channels, sampleRate int) {
	if cap(m.sumsq) < channels {
		m.sumsq = make([]float64, channels)
	}
	m.sumsq = m.sumsq[:channels]
	for ch := range m.sumsq {
		m.sumsq[ch] = 0
	}
	m.count = 0
}

func (m *RMSMeter) Add(blocks [][]float32, n int) {
	for ch := range m.sumsq {
		if ch >= len(blocks) {
			break
		}
		block := blocks[ch][:n]
		sum := 0.0
		for _, v := range block {
			sum += float64(v) * float64(v)
		}
		m.sumsq[ch] += sum
	}
	m.count += int64(n)
}

func (m *RMSMeter) Channel(ch int) (float64, bool) {
	if m.count == 0 || ch < 0 || ch >= len(m.sumsq) {
		return 0, false
	}
	return math.Sqrt(m.sumsq[ch] / float64(m.count)), true
}

func (m *RMSMeter) Linked() (float64, bool) {
	if m.count == 0 {
		return 0, false
	}
	max := 0.0
	for ch := range m.sumsq {
		if v := math.Sqrt(m.sumsq[ch] / float64(m.count)); v > max {
			max = v
		}
	}
	return max, true
}
