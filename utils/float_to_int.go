// SPDX-License-Identifier: EPL-2.0

// Package utils holds the scalar conversions from normalized samples to
// signed integer PCM.
package utils

import (
	"fmt"
	"math"
)

// Full scale for each supported bit depth. The negative side stops one code
// short of the type minimum so the encoded range is symmetric.
const (
	MaxInt16 = 32767
	MaxInt24 = 8388607
	MaxInt32 = 2147483647
)

// Clamp saturates x to [-1, 1]. NaN maps to silence.
func Clamp(x float64) float64 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	} else if math.IsNaN(x) {
		return 0
	}
	return x
}

// Float64ToInt16 clamps x and scales it by 32767, truncating toward zero.
func Float64ToInt16(x float64) int16 {
	return int16(Clamp(x) * MaxInt16)
}

// Float64ToInt24 clamps x and scales it by 8388607, truncating toward zero.
// Only the low 24 bits of the result are meaningful.
func Float64ToInt24(x float64) int32 {
	return int32(Clamp(x) * MaxInt24)
}

// Float64ToInt32 clamps x and scales it by 2147483647, truncating toward zero.
func Float64ToInt32(x float64) int32 {
	return int32(Clamp(x) * MaxInt32)
}

// Quantize converts x for the given bit depth.
func Quantize(x float64, bitDepth int) (int, error) {
	switch bitDepth {
	case 16:
		return int(Float64ToInt16(x)), nil
	case 24:
		return int(Float64ToInt24(x)), nil
	case 32:
		return int(Float64ToInt32(x)), nil
	}
	return 0, fmt.Errorf("quantize: unsupported bit depth %d", bitDepth)
}

// FullScale returns the largest code for bitDepth, or 0 when unsupported.
func FullScale(bitDepth int) int {
	switch bitDepth {
	case 16:
		return MaxInt16
	case 24:
		return MaxInt24
	case 32:
		return MaxInt32
	}
	return 0
}
