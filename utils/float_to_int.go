package utils

// Float32ToInt16 converts a [-1,1] sample to 16-bit PCM. Out-of-range
// inputs clamp; the 32767 scale keeps +1.0 from overflowing.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}

// Int16ToFloat32 converts a 16-bit PCM sample to the [-1,1) float range
// decoders produce.
func Int16ToFloat32(x int16) float32 {
	return float32(x) / 32768.0
}
