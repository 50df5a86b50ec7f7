package firpar

import (
	"fmt"
	"strings"
)

// PresetFracBits is the Q format of the preset tables (Q15).
const PresetFracBits = 15

// Preset selects a built-in coefficient table.
type Preset int

const (
	// PresetLowpass10 is a 10-tap Hamming-windowed low-pass, cutoff fs/8.
	PresetLowpass10 Preset = iota
	// PresetLowpass20 is a 20-tap Hamming-windowed low-pass, cutoff fs/8.
	PresetLowpass20
)

// Unity DC gain in Q15: each table sums to 32768.
var (
	lowpass10 = [10]int16{-80, 240, 1987, 5542, 8695, 8695, 5542, 1987, 240, -80}
	lowpass20 = [20]int16{
		81, 49, -94, -426, -745, -510, 823, 3268, 6041, 7897,
		7897, 6041, 3268, 823, -510, -745, -426, -94, 49, 81,
	}
)

func (p Preset) String() string {
	switch p {
	case PresetLowpass10:
		return "lowpass10"
	case PresetLowpass20:
		return "lowpass20"
	default:
		return "unknown"
	}
}

// PresetCoefficients returns a copy of the Q15 table for p.
func PresetCoefficients(p Preset) ([]int16, error) {
	switch p {
	case PresetLowpass10:
		return append([]int16(nil), lowpass10[:]...), nil
	case PresetLowpass20:
		return append([]int16(nil), lowpass20[:]...), nil
	default:
		return nil, fmt.Errorf("firpar: invalid preset: %d", p)
	}
}

// ParsePreset parses the names returned by Preset.String.
func ParsePreset(s string) (Preset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lowpass10":
		return PresetLowpass10, nil
	case "lowpass20":
		return PresetLowpass20, nil
	default:
		return 0, fmt.Errorf("firpar: unknown preset %q", s)
	}
}
