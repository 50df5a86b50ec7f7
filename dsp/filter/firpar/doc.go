// Package firpar implements a parallel 16-bit fixed-point FIR filter kernel
// family for a fixed team of cooperating cores.
//
// One kernel invocation filters one tile of samples. The caller fills an
// [Args] with the tile (In), the delay line holding the NCoeffs-1 samples that
// preceded it (History), the coefficients and an output buffer, then calls one
// of the entry points of a [Kernel]:
//
//   - [Kernel.FilterScalar]: any tap count, scalar reference.
//   - [Kernel.FilterPaired]: even tap count, two products per step.
//   - [Kernel.Filter10Taps], [Kernel.Filter20Taps]: fixed tap counts, the
//     paired algorithm specialized at compile time.
//
// Output sample i is
//
//	acc    = sum_{k=0}^{NCoeffs-1} W[i+k] * Coeffs[k],   W = History ++ In
//	Out[i] = fixed.Narrow(acc, Norm)
//
// so Coeffs[NCoeffs-1] weights the newest sample In[i]. Every variant produces
// bit-identical output.
//
// The output range is split into contiguous buckets, one per core. After all
// cores finished, core 0 rewrites History with the last NCoeffs-1 samples of
// the window so the next tile continues the stream seamlessly. Preconditions
// are not checked on this path; use [Args.Validate] when staging untrusted
// parameters.
//
// [Stream] sequences tiles over a long signal and is what most callers want.
package firpar
