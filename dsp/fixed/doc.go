// Package fixed provides the 16-bit fixed-point arithmetic shared by the
// integer filter kernels.
//
// Samples and coefficients are signed 16-bit values in a Q format chosen by
// the caller. Products are accumulated in 64 bits and narrowed back to 16 bits
// by [Narrow], which rounds half up at the requested fractional position and
// saturates instead of wrapping:
//
//	y := fixed.Narrow(acc, 15) // Q30 accumulator -> Q15 sample
//
// [Quantize] and [ToFloat] convert between float64 values and a Q format. They
// are meant for loading externally designed coefficient tables and for
// analysis; the filter kernels never touch floating point.
package fixed
