package firpar

import "fmt"

// Args is the argument block of one kernel invocation. It borrows every
// buffer; only History is written besides Out.
type Args struct {
	// In is the current tile, NSamples long.
	In []int16
	// History is the delay line: the NCoeffs-1 samples that logically precede
	// In. It is rewritten at the end of the call for the next tile.
	History []int16
	// Coeffs holds NCoeffs coefficients.
	Coeffs []int16
	// Out receives NSamples filtered samples. It must not overlap In or
	// History.
	Out []int16

	NSamples int
	NCoeffs  int
	// Norm is the right shift applied to each accumulator before clipping.
	Norm uint
}

// Window returns the combined view History ++ In.
func (a *Args) Window() Window {
	return NewWindow(a.History[:a.NCoeffs-1], a.In[:a.NSamples])
}

// Validate checks buffer lengths against NSamples and NCoeffs. The kernels
// never call it.
func (a *Args) Validate() error {
	if a.NCoeffs < 1 {
		return ErrNoCoeffs
	}
	if a.NSamples < 0 {
		return fmt.Errorf("%w: NSamples %d", ErrLength, a.NSamples)
	}
	if len(a.Coeffs) < a.NCoeffs {
		return fmt.Errorf("%w: %d coefficients, NCoeffs %d", ErrLength, len(a.Coeffs), a.NCoeffs)
	}
	if len(a.History) != a.NCoeffs-1 {
		return fmt.Errorf("%w: history %d, want %d", ErrLength, len(a.History), a.NCoeffs-1)
	}
	if len(a.In) < a.NSamples {
		return fmt.Errorf("%w: input %d, NSamples %d", ErrLength, len(a.In), a.NSamples)
	}
	if len(a.Out) < a.NSamples {
		return fmt.Errorf("%w: output %d, NSamples %d", ErrLength, len(a.Out), a.NSamples)
	}
	return nil
}

// ValidateFor runs Validate and then checks that variant v accepts the tap
// count.
func (a *Args) ValidateFor(v Variant) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return v.Check(a.NCoeffs)
}
