// SPDX-License-Identifier: EPL-2.0

package loudness

import "github.com/ik5/audfx/param"

// Metric selects the loudness statistic a run normalizes to. Exactly one
// metric is active per run.
type Metric int

const (
	// MetricLoudness targets integrated loudness in LUFS.
	MetricLoudness Metric = iota
	// MetricRMS targets an RMS level in dB.
	MetricRMS
)

func (m Metric) String() string {
	switch m {
	case MetricLoudness:
		return "integrated loudness"
	case MetricRMS:
		return "RMS"
	default:
		return "unknown"
	}
}

// Parameter bounds, also declared in Params for host-side validation.
const (
	MinLUFSLevel = -145.0
	MaxLUFSLevel = 0.0
	MinRMSLevel  = -145.0
	MaxRMSLevel  = 0.0

	DefaultLUFSLevel = -23.0
	DefaultRMSLevel  = -20.0
)

// Settings is the per-run configuration of the normalizer.
type Settings struct {
	// Metric to normalize to.
	Metric Metric
	// TargetLUFS is the integrated loudness target, used when Metric ==
	// MetricLoudness.
	TargetLUFS float64
	// TargetRMS is the RMS target in dB, used when Metric == MetricRMS.
	TargetRMS float64
	// StereoIndependent measures and normalizes stereo channels
	// separately instead of as a linked pair.
	StereoIndependent bool
	// DualMono treats a mono track as a dual-mono pair for integrated
	// loudness.
	DualMono bool
}

// DefaultSettings returns the normalizer defaults.
func DefaultSettings() Settings {
	return Settings{
		Metric:            MetricLoudness,
		TargetLUFS:        DefaultLUFSLevel,
		TargetRMS:         DefaultRMSLevel,
		StereoIndependent: false,
		DualMono:          true,
	}
}

// Validate checks the host-settable fields against their declared bounds.
func (s Settings) Validate() error {
	switch s.Metric {
	case MetricLoudness:
		if s.TargetLUFS < MinLUFSLevel || s.TargetLUFS > MaxLUFSLevel {
			return ErrTargetRange
		}
	case MetricRMS:
		if s.TargetRMS < MinRMSLevel || s.TargetRMS > MaxRMSLevel {
			return ErrTargetRange
		}
	default:
		return ErrBadMetric
	}
	return nil
}

// Params describes the host-settable fields in declaration order.
func Params() []param.Field {
	return []param.Field{
		{Name: "NormalizeTo", Kind: param.Float, Def: float64(MetricLoudness), Min: float64(MetricLoudness), Max: float64(MetricRMS)},
		{Name: "LUFSLevel", Kind: param.Float, Def: DefaultLUFSLevel, Min: MinLUFSLevel, Max: MaxLUFSLevel},
		{Name: "RMSLevel", Kind: param.Float, Def: DefaultRMSLevel, Min: MinRMSLevel, Max: MaxRMSLevel},
		{Name: "StereoIndependent", Kind: param.Bool, DefBool: false},
		{Name: "DualMono", Kind: param.Bool, DefBool: true},
	}
}
