package response

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-firpar/dsp/filter/firpar"
)

func TestNewAnalyzer_InvalidSize(t *testing.T) {
	for _, size := range []int{-4, 0, 1, 3, 100} {
		if _, err := NewAnalyzer(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewAnalyzer(%d) err = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestMagnitude_DCGainMatchesSum(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []int16
		frac   uint
	}{
		{name: "unit", coeffs: []int16{1 << 14}, frac: 14},
		{name: "ramp", coeffs: []int16{1, 2, 3, 4}, frac: 0},
		{name: "signed", coeffs: []int16{-300, 1200, 1200, -300}, frac: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mag, err := Magnitude(tt.coeffs, tt.frac, 64)
			if err != nil {
				t.Fatal(err)
			}
			if len(mag) != 33 {
				t.Fatalf("len = %d, want 33", len(mag))
			}
			want := math.Abs(DCGain(tt.coeffs, tt.frac))
			if math.Abs(mag[0]-want) > 1e-9 {
				t.Fatalf("|H(0)| = %g, want %g", mag[0], want)
			}
		})
	}
}

func TestMagnitude_ImpulseIsFlat(t *testing.T) {
	a, err := NewAnalyzer(32)
	if err != nil {
		t.Fatal(err)
	}
	mag, err := a.Magnitude([]int16{0, 0, 16384}, 15)
	if err != nil {
		t.Fatal(err)
	}
	for k, m := range mag {
		if math.Abs(m-0.5) > 1e-9 {
			t.Fatalf("bin %d: %g, want 0.5", k, m)
		}
	}
}

func TestMagnitude_PresetIsLowpass(t *testing.T) {
	for _, p := range []firpar.Preset{firpar.PresetLowpass10, firpar.PresetLowpass20} {
		t.Run(p.String(), func(t *testing.T) {
			coeffs, err := firpar.PresetCoefficients(p)
			if err != nil {
				t.Fatal(err)
			}
			db, err := (mustAnalyzer(t, 256)).MagnitudeDB(coeffs, firpar.PresetFracBits)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(db[0]) > 0.01 {
				t.Fatalf("DC = %.3f dB, want 0", db[0])
			}
			if nyq := db[len(db)-1]; nyq > -20 {
				t.Fatalf("Nyquist = %.1f dB, want < -20", nyq)
			}
		})
	}
}

func TestMagnitude_Errors(t *testing.T) {
	a := mustAnalyzer(t, 4)
	if _, err := a.Magnitude(nil, 0); !errors.Is(err, ErrEmptyCoeffs) {
		t.Fatalf("err = %v, want ErrEmptyCoeffs", err)
	}
	if _, err := a.Magnitude(make([]int16, 5), 0); !errors.Is(err, ErrTooManyTaps) {
		t.Fatalf("err = %v, want ErrTooManyTaps", err)
	}
}

func TestMagnitudeDB_ZeroFloor(t *testing.T) {
	db, err := mustAnalyzer(t, 8).MagnitudeDB([]int16{0}, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range db {
		if v != minDB {
			t.Fatalf("got %g, want %g", v, minDB)
		}
	}
}

func TestBinFrequency(t *testing.T) {
	if got := BinFrequency(16, 256, 48000); got != 3000 {
		t.Fatalf("BinFrequency = %g, want 3000", got)
	}
}

func mustAnalyzer(t *testing.T, size int) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(size)
	if err != nil {
		t.Fatal(err)
	}
	return a
}
