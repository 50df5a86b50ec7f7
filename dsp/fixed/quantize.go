package fixed

import "math"

// Quantize converts src to signed 16-bit values with fracBits fractional bits
// and writes them to dst. Values are rounded half up and saturated; the number
// of saturated values is returned. NaN converts to 0.
//
// dst must be at least as long as src.
func Quantize(dst []int16, src []float64, fracBits uint) (clipped int) {
	if len(src) == 0 {
		return 0
	}
	_ = dst[len(src)-1]

	scale := math.Ldexp(1, int(fracBits))
	for i, x := range src {
		if math.IsNaN(x) {
			dst[i] = 0
			continue
		}
		v := math.Floor(x*scale + 0.5)
		switch {
		case v > MaxSample:
			dst[i] = MaxSample
			clipped++
		case v < MinSample:
			dst[i] = MinSample
			clipped++
		default:
			dst[i] = int16(v)
		}
	}
	return clipped
}

// ToFloat converts a fixed-point sample with fracBits fractional bits to
// float64.
func ToFloat(x int16, fracBits uint) float64 {
	return math.Ldexp(float64(x), -int(fracBits))
}

// ToFloatSlice converts src into dst using [ToFloat]. dst must be at least as
// long as src.
func ToFloatSlice(dst []float64, src []int16, fracBits uint) {
	for i, x := range src {
		dst[i] = ToFloat(x, fracBits)
	}
}
