package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-firpar/dsp/fixed"
)

// DeterministicSine generates a Q15 sine wave with the given peak amplitude
// in [0, 1].
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []int16 {
	tmp := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range tmp {
		tmp[i] = amplitude * math.Sin(step*float64(i))
	}
	out := make([]int16, length)
	fixed.Quantize(out, tmp, 15)
	return out
}

// DeterministicNoise generates uniform noise in [-amplitude, amplitude] with a
// fixed seed.
func DeterministicNoise(seed int64, amplitude int16, length int) []int16 {
	out := make([]int16, length)
	rng := rand.New(rand.NewSource(seed))
	span := int(amplitude)*2 + 1
	for i := range out {
		out[i] = int16(rng.Intn(span) - int(amplitude))
	}
	return out
}

// FullScaleNoise generates noise over the whole int16 range.
func FullScaleNoise(seed int64, length int) []int16 {
	out := make([]int16, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = int16(rng.Uint32())
	}
	return out
}

// Impulse generates a single sample of the given value at pos.
func Impulse(length, pos int, value int16) []int16 {
	out := make([]int16, length)
	if pos >= 0 && pos < length {
		out[pos] = value
	}
	return out
}

// DC generates a constant signal.
func DC(value int16, length int) []int16 {
	out := make([]int16, length)
	for i := range out {
		out[i] = value
	}
	return out
}
