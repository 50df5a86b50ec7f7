package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-firpar/dsp/fixed"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by response analysis.
var (
	ErrEmptyCoeffs = errors.New("response: coefficient set is empty")
	ErrInvalidSize = errors.New("response: size must be a power of two >= 2")
	ErrTooManyTaps = errors.New("response: more taps than analysis size")
)

// minDB is the floor MagnitudeDB reports for bins with zero magnitude.
const minDB = -240.0

// Analyzer computes magnitude responses with a fixed FFT size. An Analyzer
// is not safe for concurrent use.
type Analyzer struct {
	size int
	plan *algofft.Plan[complex128]
	buf  []complex128
	re   []float64
	im   []float64
}

// NewAnalyzer creates an analyzer with the given FFT size.
func NewAnalyzer(size int) (*Analyzer, error) {
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	bins := size/2 + 1
	return &Analyzer{
		size: size,
		plan: plan,
		buf:  make([]complex128, size),
		re:   make([]float64, bins),
		im:   make([]float64, bins),
	}, nil
}

// Size returns the FFT size.
func (a *Analyzer) Size() int {
	return a.size
}

// Bins returns the number of bins Magnitude returns.
func (a *Analyzer) Bins() int {
	return a.size/2 + 1
}

// Magnitude returns |H(k)| for k in [0, size/2].
func (a *Analyzer) Magnitude(coeffs []int16, fracBits uint) ([]float64, error) {
	if err := a.transform(coeffs, fracBits); err != nil {
		return nil, err
	}

	out := make([]float64, a.Bins())
	vecmath.Magnitude(out, a.re, a.im)
	return out, nil
}

// MagnitudeDB returns 20*log10|H(k)| for k in [0, size/2]. Zero bins are
// clamped to -240 dB.
func (a *Analyzer) MagnitudeDB(coeffs []int16, fracBits uint) ([]float64, error) {
	mag, err := a.Magnitude(coeffs, fracBits)
	if err != nil {
		return nil, err
	}
	for i, m := range mag {
		if m <= 0 {
			mag[i] = minDB
			continue
		}
		mag[i] = math.Max(20*math.Log10(m), minDB)
	}
	return mag, nil
}

func (a *Analyzer) transform(coeffs []int16, fracBits uint) error {
	if len(coeffs) == 0 {
		return ErrEmptyCoeffs
	}
	if len(coeffs) > a.size {
		return fmt.Errorf("%w: %d > %d", ErrTooManyTaps, len(coeffs), a.size)
	}

	clear(a.buf)
	for i, c := range coeffs {
		a.buf[i] = complex(fixed.ToFloat(c, fracBits), 0)
	}

	if err := a.plan.Forward(a.buf, a.buf); err != nil {
		return fmt.Errorf("response: forward FFT: %w", err)
	}

	for k := range a.re {
		a.re[k] = real(a.buf[k])
		a.im[k] = imag(a.buf[k])
	}
	return nil
}

// Magnitude is a convenience wrapper that builds a one-shot Analyzer.
func Magnitude(coeffs []int16, fracBits uint, size int) ([]float64, error) {
	a, err := NewAnalyzer(size)
	if err != nil {
		return nil, err
	}
	return a.Magnitude(coeffs, fracBits)
}

// DCGain returns the sum of the coefficients in linear units.
func DCGain(coeffs []int16, fracBits uint) float64 {
	var sum int64
	for _, c := range coeffs {
		sum += int64(c)
	}
	return float64(sum) / float64(int64(1)<<fracBits)
}

// BinFrequency returns the centre frequency of bin k in Hz.
func BinFrequency(k, size int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(size)
}
