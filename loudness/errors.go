// SPDX-License-Identifier: EPL-2.0

package loudness

import "errors"

var (
	// ErrNoMeter indicates the settings target integrated loudness but no
	// meter was supplied.
	ErrNoMeter = errors.New("integrated loudness requires a meter")

	// ErrBufferCapacity indicates a buffer capacity below one sample.
	ErrBufferCapacity = errors.New("buffer capacity must be at least 1")

	// ErrTargetRange indicates a target level outside the declared bounds.
	ErrTargetRange = errors.New("target level out of range")

	// ErrBadMetric indicates an unknown normalization metric.
	ErrBadMetric = errors.New("unknown normalization metric")
)
