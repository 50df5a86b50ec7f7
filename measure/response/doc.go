// Package response computes the frequency response of fixed-point FIR
// coefficient sets.
//
// Coefficients are interpreted in a Q format with fracBits fractional bits,
// zero-padded to the analysis size and transformed with a complex FFT. Only
// the non-negative frequency half is returned.
//
// # Usage
//
//	a, err := response.NewAnalyzer(512)
//	mag, err := a.Magnitude(coeffs, 15)
//	fmt.Printf("DC gain = %.3f\n", mag[0])
package response
