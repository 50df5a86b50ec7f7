package fixed

import (
	"math"
	"math/big"
	"testing"
)

func TestNarrow_ClipBoundaries(t *testing.T) {
	tests := []struct {
		name string
		acc  int64
		norm uint
		want int16
	}{
		{name: "max", acc: 32767, norm: 0, want: 32767},
		{name: "max+1 clips", acc: 32768, norm: 0, want: 32767},
		{name: "min", acc: -32768, norm: 0, want: -32768},
		{name: "min-1 clips", acc: -32769, norm: 0, want: -32768},
		{name: "max q15", acc: 32767 << 15, norm: 15, want: 32767},
		{name: "max+1 q15 clips", acc: 32768 << 15, norm: 15, want: 32767},
		{name: "min q15", acc: -32768 << 15, norm: 15, want: -32768},
		{name: "min-1 q15 clips", acc: -32769 << 15, norm: 15, want: -32768},
		{name: "huge positive", acc: math.MaxInt64 >> 1, norm: 4, want: 32767},
		{name: "huge negative", acc: math.MinInt64 >> 1, norm: 4, want: -32768},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Narrow(tt.acc, tt.norm); got != tt.want {
				t.Fatalf("Narrow(%d, %d) = %d, want %d", tt.acc, tt.norm, got, tt.want)
			}
		})
	}
}

func TestNarrow_RoundHalfUp(t *testing.T) {
	tests := []struct {
		acc  int64
		norm uint
		want int16
	}{
		{acc: 16384, norm: 15, want: 1},
		{acc: 16383, norm: 15, want: 0},
		{acc: -16384, norm: 15, want: 0},
		{acc: -16385, norm: 15, want: -1},
		{acc: 3, norm: 1, want: 2},
		{acc: -3, norm: 1, want: -1},
		{acc: 5, norm: 2, want: 1},
		{acc: 6, norm: 2, want: 2},
		{acc: -6, norm: 2, want: -1},
		{acc: 7, norm: 0, want: 7},
		{acc: 100, norm: 64, want: 0},
		{acc: -100, norm: 64, want: 0},
		{acc: math.MinInt64, norm: 64, want: 0},
		{acc: math.MaxInt64, norm: 200, want: 0},
		{acc: math.MaxInt64, norm: 63, want: 1},
		{acc: math.MinInt64, norm: 63, want: -1},
		{acc: math.MaxInt64, norm: 48, want: 32767},
	}

	for _, tt := range tests {
		if got := Narrow(tt.acc, tt.norm); got != tt.want {
			t.Errorf("Narrow(%d, %d) = %d, want %d", tt.acc, tt.norm, got, tt.want)
		}
	}
}

// roundRef evaluates floor((acc + 2^(norm-1)) / 2^norm) without overflow.
func roundRef(acc int64, norm uint) int64 {
	if norm == 0 {
		return acc
	}
	x := new(big.Int).SetInt64(acc)
	x.Add(x, new(big.Int).Lsh(big.NewInt(1), norm-1))
	x.Rsh(x, norm)
	return x.Int64()
}

func TestRound_MatchesExactArithmetic(t *testing.T) {
	accs := []int64{
		0, 1, -1, 2, -2, 3, -3, 16383, 16384, -16384, -16385,
		math.MaxInt64, math.MaxInt64 - 1, math.MinInt64, math.MinInt64 + 1,
		math.MaxInt64 >> 1, math.MinInt64 >> 1,
	}
	for acc := int64(-1 << 22); acc <= 1<<22; acc += 4093 {
		accs = append(accs, acc)
	}

	for norm := uint(0); norm <= 70; norm++ {
		for _, acc := range accs {
			want := roundRef(acc, norm)
			if got := Round(acc, norm); got != want {
				t.Fatalf("Round(%d, %d) = %d, want %d", acc, norm, got, want)
			}
			if got := Narrow(acc, norm); got != Saturate16(want) {
				t.Fatalf("Narrow(%d, %d) = %d, want %d", acc, norm, got, Saturate16(want))
			}
		}
	}
}

func TestSaturate16(t *testing.T) {
	if got := Saturate16(100000); got != MaxSample {
		t.Fatalf("Saturate16(100000) = %d", got)
	}
	if got := Saturate16(-100000); got != MinSample {
		t.Fatalf("Saturate16(-100000) = %d", got)
	}
	if got := Saturate16(-5); got != -5 {
		t.Fatalf("Saturate16(-5) = %d", got)
	}
}
