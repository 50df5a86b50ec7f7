package main

import (
	"testing"

	"github.com/cwbudde/algo-firpar/dsp/filter/firpar"
)

func TestLoadCoefficients(t *testing.T) {
	got, err := loadCoefficients(config{coeffs: " 1, -2,3 ,4,"})
	if err != nil {
		t.Fatal(err)
	}
	want := []int16{1, -2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	if _, err := loadCoefficients(config{coeffs: "40000"}); err == nil {
		t.Fatal("out-of-range coefficient accepted")
	}
	if _, err := loadCoefficients(config{coeffs: ","}); err == nil {
		t.Fatal("empty list accepted")
	}

	p, err := loadCoefficients(config{preset: "lowpass10"})
	if err != nil || len(p) != 10 {
		t.Fatalf("preset: %v, %v", p, err)
	}
}

func TestApplicableVariants(t *testing.T) {
	tests := []struct {
		taps int
		want []firpar.Variant
	}{
		{taps: 3, want: []firpar.Variant{firpar.VariantAuto, firpar.VariantScalar}},
		{taps: 4, want: []firpar.Variant{firpar.VariantAuto, firpar.VariantScalar, firpar.VariantPaired}},
		{taps: 20, want: []firpar.Variant{firpar.VariantAuto, firpar.VariantScalar, firpar.VariantPaired, firpar.Variant20Taps}},
	}
	for _, tt := range tests {
		got := applicableVariants(tt.taps)
		if len(got) != len(tt.want) {
			t.Fatalf("taps=%d: got %v, want %v", tt.taps, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("taps=%d: got %v, want %v", tt.taps, got, tt.want)
			}
		}
	}
}

func TestFilterAll_ConcreteScenario(t *testing.T) {
	k, err := firpar.New(2)
	if err != nil {
		t.Fatal(err)
	}
	defer k.Close()

	out, _, err := filterAll(k, []int16{1, 2, 3, 4}, []int16{1, 2, 3, 4, 5}, config{tile: 2}, firpar.VariantPaired)
	if err != nil {
		t.Fatal(err)
	}
	if got := formatSamples(out); got != "[4 11 20 30 40]" {
		t.Fatalf("got %s", got)
	}
}

func TestMakeSignal(t *testing.T) {
	for _, kind := range []string{"sine", "noise", "impulse", "dc"} {
		s, err := makeSignal(kind, 64, 48000)
		if err != nil || len(s) != 64 {
			t.Fatalf("%s: len %d, err %v", kind, len(s), err)
		}
	}
	if _, err := makeSignal("chirp", 8, 48000); err == nil {
		t.Fatal("unknown signal accepted")
	}
}
