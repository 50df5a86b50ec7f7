package testutil

import (
	"testing"

	"github.com/cwbudde/algo-firpar/dsp/fixed"
)

// RequireSamplesEqual fails t unless got and want are identical.
func RequireSamplesEqual(t testing.TB, got, want []int16) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	if i, ok := FirstMismatch(got, want); !ok {
		t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
	}
}

// FirstMismatch returns the first index where a and b differ and false, or
// -1 and true when they are equal over the shorter length.
func FirstMismatch(a, b []int16) (int, bool) {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i, false
		}
	}
	return -1, true
}

// DirectFIR filters input by literal evaluation of
//
//	y[i] = Narrow(sum_k w[i+k]*coeffs[k], norm),  w = history ++ input
//
// It is the oracle the kernel tests compare against.
func DirectFIR(history, input, coeffs []int16, norm uint) []int16 {
	w := make([]int16, 0, len(history)+len(input))
	w = append(w, history...)
	w = append(w, input...)

	out := make([]int16, len(input))
	for i := range out {
		var acc int64
		for k, c := range coeffs {
			acc += int64(w[i+k]) * int64(c)
		}
		out[i] = fixed.Narrow(acc, norm)
	}
	return out
}
