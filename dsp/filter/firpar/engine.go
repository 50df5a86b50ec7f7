package firpar

import "github.com/cwbudde/algo-firpar/dsp/fixed"

// computeFn filters the outputs [start, end) of a.
type computeFn func(a *Args, start, end int)

// tapArray is the set of coefficient arrays with a specialized kernel. Each
// instantiation of computeFixed has its own GC shape, so the tap count is a
// compile-time constant inside it.
type tapArray interface {
	[10]int16 | [20]int16
}

// computeScalar is the reference kernel. It accepts any tap count.
func computeScalar(a *Args, start, end int) {
	n := a.NCoeffs
	coeffs := a.Coeffs[:n]
	out := a.Out
	norm := a.Norm

	w := a.Window()
	i := start
	for edge := min(end, w.HistoryLen()); i < edge; i++ {
		lo, hi := w.Split(i, n)
		acc := dotScalar(lo, coeffs[:len(lo)]) + dotScalar(hi, coeffs[len(lo):])
		out[i] = fixed.Narrow(acc, norm)
	}

	in := a.In
	for ; i < end; i++ {
		out[i] = fixed.Narrow(dotScalar(in[i-n+1:i+1], coeffs), norm)
	}
}

// computePaired consumes samples and coefficients two at a time. NCoeffs must
// be even; an odd last tap is ignored.
func computePaired(a *Args, start, end int) {
	n := a.NCoeffs &^ 1
	coeffs := a.Coeffs[:n]
	out := a.Out
	norm := a.Norm

	w := a.Window()
	i := start
	for edge := min(end, w.HistoryLen()); i < edge; i++ {
		out[i] = fixed.Narrow(dotPairedWindow(w, i, coeffs), norm)
	}

	in := a.In
	first := a.NCoeffs - 1
	for ; i < end; i++ {
		out[i] = fixed.Narrow(dotPaired(in[i-first:i-first+n], coeffs), norm)
	}
}

// computeFixed is computePaired with the tap count fixed by C and the
// coefficients held in a local array.
func computeFixed[C tapArray](a *Args, start, end int) {
	var c C
	n := len(c)
	for k := range n {
		c[k] = a.Coeffs[k]
	}
	out := a.Out
	norm := a.Norm

	w := a.Window()
	i := start
	for edge := min(end, w.HistoryLen()); i < edge; i++ {
		var acc int64
		for k := 0; k < n; k += 2 {
			acc += int64(w.At(i+k))*int64(c[k]) + int64(w.At(i+k+1))*int64(c[k+1])
		}
		out[i] = fixed.Narrow(acc, norm)
	}

	in := a.In
	for ; i < end; i++ {
		x := in[i-n+1 : i+1]
		var acc int64
		for k := 0; k < n; k += 2 {
			acc += int64(x[k])*int64(c[k]) + int64(x[k+1])*int64(c[k+1])
		}
		out[i] = fixed.Narrow(acc, norm)
	}
}

func dotScalar(x, c []int16) int64 {
	var acc int64
	for k, ck := range c {
		acc += int64(x[k]) * int64(ck)
	}
	return acc
}

func dotPaired(x, c []int16) int64 {
	var acc int64
	for k := 0; k+1 < len(c); k += 2 {
		acc += int64(x[k])*int64(c[k]) + int64(x[k+1])*int64(c[k+1])
	}
	return acc
}

func dotPairedWindow(w Window, i int, c []int16) int64 {
	var acc int64
	for k := 0; k+1 < len(c); k += 2 {
		acc += int64(w.At(i+k))*int64(c[k]) + int64(w.At(i+k+1))*int64(c[k+1])
	}
	return acc
}
