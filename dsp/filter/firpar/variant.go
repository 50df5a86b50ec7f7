package firpar

import (
	"fmt"
	"strings"
)

// Variant selects a dot-product engine.
type Variant int

const (
	// VariantAuto lets the registry pick the fastest engine for the tap count.
	VariantAuto Variant = iota
	// VariantScalar is the reference engine; any tap count.
	VariantScalar
	// VariantPaired processes two taps per step; even tap counts.
	VariantPaired
	// Variant10Taps is specialized for exactly 10 taps.
	Variant10Taps
	// Variant20Taps is specialized for exactly 20 taps.
	Variant20Taps
)

func (v Variant) String() string {
	switch v {
	case VariantAuto:
		return "auto"
	case VariantScalar:
		return "scalar"
	case VariantPaired:
		return "paired"
	case Variant10Taps:
		return "taps10"
	case Variant20Taps:
		return "taps20"
	default:
		return "unknown"
	}
}

// ParseVariant parses the names returned by Variant.String. "vector" is
// accepted for paired, "10" and "20" for the specialized variants.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return VariantAuto, nil
	case "scalar":
		return VariantScalar, nil
	case "paired", "vector":
		return VariantPaired, nil
	case "taps10", "10":
		return Variant10Taps, nil
	case "taps20", "20":
		return Variant20Taps, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// Check reports whether v can filter with nCoeffs taps.
func (v Variant) Check(nCoeffs int) error {
	if nCoeffs < 1 {
		return ErrNoCoeffs
	}
	switch v {
	case VariantAuto, VariantScalar:
		return nil
	case VariantPaired:
		if nCoeffs%2 != 0 {
			return fmt.Errorf("%w: %d taps", ErrOddTaps, nCoeffs)
		}
		return nil
	case Variant10Taps:
		if nCoeffs != 10 {
			return fmt.Errorf("%w: %s needs 10, got %d", ErrTapMismatch, v, nCoeffs)
		}
		return nil
	case Variant20Taps:
		if nCoeffs != 20 {
			return fmt.Errorf("%w: %s needs 20, got %d", ErrTapMismatch, v, nCoeffs)
		}
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
}
