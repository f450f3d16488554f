// SPDX-License-Identifier: EPL-2.0

package dtmf

import "math"

// Tone edges fade linearly over rate/250 samples (4 ms), enough to remove
// the clicking of an abrupt transition without audibly shortening the tone.
const fadeDivisor = 250.0

// DTMF keypad frequency layout:
//
//	--------------------------------------------
//	            1209 Hz 1336 Hz 1477 Hz 1633 Hz
//
//	                        ABC     DEF
//	 697 Hz          1       2       3       A
//
//	                GHI     JKL     MNO
//	 770 Hz          4       5       6       B
//
//	                PQRS    TUV     WXYZ
//	 852 Hz          7       8       9       C
//
//	                        oper
//	 941 Hz          *       0       #       D
//	--------------------------------------------
//
// Each symbol sounds as the sum of its row (low group) and column (high
// group) frequency. Lowercase letters map to their keypad digit group;
// uppercase A-D are the carrier extra tones. Unmapped symbols synthesize
// silence (both lookups yield 0 Hz).
var lowGroup = map[byte]float64{
	'1': 697, '2': 697, '3': 697, 'A': 697,
	'a': 697, 'b': 697, 'c': 697,
	'd': 697, 'e': 697, 'f': 697,

	'4': 770, '5': 770, '6': 770, 'B': 770,
	'g': 770, 'h': 770, 'i': 770,
	'j': 770, 'k': 770, 'l': 770,
	'm': 770, 'n': 770, 'o': 770,

	'7': 852, '8': 852, '9': 852, 'C': 852,
	'p': 852, 'q': 852, 'r': 852, 's': 852,
	't': 852, 'u': 852, 'v': 852,
	'w': 852, 'x': 852, 'y': 852, 'z': 852,

	'*': 941, '0': 941, '#': 941, 'D': 941,
}

var highGroup = map[byte]float64{
	'1': 1209, '4': 1209, '7': 1209, '*': 1209,
	'g': 1209, 'h': 1209, 'i': 1209,
	'p': 1209, 'q': 1209, 'r': 1209, 's': 1209,

	'2': 1336, '5': 1336, '8': 1336, '0': 1336,
	'a': 1336, 'b': 1336, 'c': 1336,
	'j': 1336, 'k': 1336, 'l': 1336,
	't': 1336, 'u': 1336, 'v': 1336,

	'3': 1477, '6': 1477, '9': 1477, '#': 1477,
	'd': 1477, 'e': 1477, 'f': 1477,
	'm': 1477, 'n': 1477, 'o': 1477,
	'w': 1477, 'x': 1477, 'y': 1477, 'z': 1477,

	'A': 1633, 'B': 1633, 'C': 1633, 'D': 1633,
}

// makeTone synthesizes one block of the given symbol into dst.
//
// last is the symbol's already-elapsed sample offset and total its full
// sample length; the (i + last) phase term keeps repeated calls for the
// same symbol phase-continuous even though each call sees only a slice of
// it. The first call (last == 0) fades in; the call that reaches the
// symbol's end fades out. Both windows are bounded by the block length.
func makeTone(dst []float32, rate float64, symbol byte, last, total int64, amplitude float64) {
	a := 2 * math.Pi * lowGroup[symbol] / rate
	b := 2 * math.Pi * highGroup[symbol] / rate

	for i := range dst {
		n := float64(int64(i) + last)
		dst[i] = float32(amplitude * 0.5 * (math.Sin(a*n) + math.Sin(b*n)))
	}

	if last == 0 {
		w := fadeLen(len(dst), rate)
		for i := 0; i < w; i++ {
			dst[i] *= float32(i) / float32(w)
		}
	}

	if last+int64(len(dst)) >= total {
		w := fadeLen(len(dst), rate)
		offset := len(dst) - w
		for i := 0; i < w; i++ {
			dst[offset+i] *= 1 - float32(i)/float32(w)
		}
	}
}

// fadeLen bounds the fade window by the block length; never negative.
func fadeLen(blockLen int, rate float64) int {
	w := int(rate / fadeDivisor)
	if w > blockLen {
		w = blockLen
	}
	if w < 0 {
		w = 0
	}
	return w
}
