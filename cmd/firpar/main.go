// Command firpar filters a deterministic Q15 test signal with the parallel
// fixed-point FIR kernels and reports timing, agreement with the scalar
// reference, and the coefficient response.
//
// Usage:
//
//	firpar [flags]
//
// Examples:
//
//	firpar
//	firpar -preset lowpass10 -cores 4 -tile 128
//	firpar -coeffs 1,2,3,4 -norm 0 -samples 5 -print
//	firpar -compare -samples 65536
//	firpar -response 512
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/cwbudde/algo-firpar/dsp/filter/firpar"
	"github.com/cwbudde/algo-firpar/internal/cpu"
	"github.com/cwbudde/algo-firpar/internal/testutil"
	"github.com/cwbudde/algo-firpar/measure/response"
)

type config struct {
	preset     string
	coeffs     string
	cores      int
	samples    int
	tile       int
	norm       uint
	variant    string
	signal     string
	compare    bool
	print      bool
	response   int
	sampleRate float64
}

func main() {
	var cfg config
	flag.StringVar(&cfg.preset, "preset", "lowpass20", "built-in coefficient table (lowpass10, lowpass20)")
	flag.StringVar(&cfg.coeffs, "coeffs", "", "comma-separated integer coefficients; overrides -preset")
	flag.IntVar(&cfg.cores, "cores", 0, "team size (0 = one per CPU)")
	flag.IntVar(&cfg.samples, "samples", 48000, "number of samples to filter")
	flag.IntVar(&cfg.tile, "tile", firpar.DefaultTileSize, "samples per kernel invocation")
	normFlag := flag.Uint("norm", firpar.PresetFracBits, "right shift applied to each accumulator")
	flag.StringVar(&cfg.variant, "variant", "auto", "engine (auto, scalar, paired, taps10, taps20)")
	flag.StringVar(&cfg.signal, "signal", "sine", "test signal (sine, noise, impulse, dc)")
	flag.BoolVar(&cfg.compare, "compare", false, "run every applicable engine and compare with scalar")
	flag.BoolVar(&cfg.print, "print", false, "print the filtered samples")
	flag.IntVar(&cfg.response, "response", 0, "print the magnitude response with this FFT size (0 = off)")
	flag.Float64Var(&cfg.sampleRate, "rate", 48000, "sample rate in Hz for the test signal and response")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: firpar [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Filters a deterministic test signal with the parallel fixed-point FIR kernels.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  firpar -preset lowpass10 -cores 4 -tile 128\n")
		fmt.Fprintf(os.Stderr, "  firpar -coeffs 1,2,3,4 -norm 0 -samples 5 -print\n")
		fmt.Fprintf(os.Stderr, "  firpar -compare -samples 65536\n")
		fmt.Fprintf(os.Stderr, "  firpar -response 512\n")
	}
	flag.Parse()
	cfg.norm = *normFlag

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	coeffs, err := loadCoefficients(cfg)
	if err != nil {
		return err
	}
	variant, err := firpar.ParseVariant(cfg.variant)
	if err != nil {
		return err
	}
	input, err := makeSignal(cfg.signal, cfg.samples, cfg.sampleRate)
	if err != nil {
		return err
	}

	k, err := firpar.New(cfg.cores)
	if err != nil {
		return err
	}
	defer k.Close()

	printHost(k)

	if cfg.response > 0 {
		if err := printResponse(coeffs, cfg.norm, cfg.response, cfg.sampleRate); err != nil {
			return err
		}
	}

	variants := []firpar.Variant{variant}
	if cfg.compare {
		variants = applicableVariants(len(coeffs))
	}

	ref, _, err := filterAll(k, coeffs, input, cfg, firpar.VariantScalar)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Engine\tTaps\tCores\tTile\tSamples\tTime\tMS/s\tMismatches\n")
	fmt.Fprintf(tw, "------\t----\t-----\t----\t-------\t----\t----\t----------\n")

	var last []int16
	for _, v := range variants {
		out, elapsed, err := filterAll(k, coeffs, input, cfg, v)
		if err != nil {
			_ = tw.Flush()
			return fmt.Errorf("%s: %w", v, err)
		}
		name := v.String()
		if v == firpar.VariantAuto {
			name = "auto:" + k.Lookup(len(coeffs)).Name
		}
		rate := 0.0
		if elapsed > 0 {
			rate = float64(len(input)) / elapsed.Seconds() / 1e6
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s\t%.2f\t%d\n",
			name, len(coeffs), k.Cores(), cfg.tile, len(input),
			elapsed.Round(time.Microsecond), rate, countMismatches(out, ref))
		last = out
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if cfg.print {
		fmt.Println(formatSamples(last))
	}
	return nil
}

func loadCoefficients(cfg config) ([]int16, error) {
	if cfg.coeffs == "" {
		p, err := firpar.ParsePreset(cfg.preset)
		if err != nil {
			return nil, err
		}
		return firpar.PresetCoefficients(p)
	}

	fields := strings.Split(cfg.coeffs, ",")
	out := make([]int16, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseInt(f, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient %q: %w", f, err)
		}
		out = append(out, int16(v))
	}
	if len(out) == 0 {
		return nil, firpar.ErrNoCoeffs
	}
	return out, nil
}

func makeSignal(kind string, n int, sampleRate float64) ([]int16, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid sample count %d", n)
	}
	switch strings.ToLower(kind) {
	case "sine":
		return testutil.DeterministicSine(1000, sampleRate, 0.9, n), nil
	case "noise":
		return testutil.FullScaleNoise(1, n), nil
	case "impulse":
		return testutil.Impulse(n, 0, 1<<14), nil
	case "dc":
		return testutil.DC(1<<14, n), nil
	default:
		return nil, fmt.Errorf("unknown signal %q", kind)
	}
}

func applicableVariants(nCoeffs int) []firpar.Variant {
	var out []firpar.Variant
	for _, v := range []firpar.Variant{
		firpar.VariantAuto, firpar.VariantScalar, firpar.VariantPaired,
		firpar.Variant10Taps, firpar.Variant20Taps,
	} {
		if v.Check(nCoeffs) == nil {
			out = append(out, v)
		}
	}
	return out
}

func filterAll(k *firpar.Kernel, coeffs, input []int16, cfg config, v firpar.Variant) ([]int16, time.Duration, error) {
	s, err := firpar.NewStream(k, coeffs, cfg.norm, firpar.WithTileSize(cfg.tile), firpar.WithVariant(v))
	if err != nil {
		return nil, 0, err
	}
	out := make([]int16, len(input))
	start := time.Now()
	if err := s.Process(out, input); err != nil {
		return nil, 0, err
	}
	return out, time.Since(start), nil
}

func countMismatches(a, b []int16) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

func printHost(k *firpar.Kernel) {
	fmt.Printf("cpu:  %s\n", cpu.DetectFeatures())
	fmt.Printf("simd: %s\n", hwy.CurrentName())
	fmt.Printf("team: %d cores\n\n", k.Cores())
}

func printResponse(coeffs []int16, fracBits uint, size int, sampleRate float64) error {
	a, err := response.NewAnalyzer(size)
	if err != nil {
		return err
	}
	db, err := a.MagnitudeDB(coeffs, fracBits)
	if err != nil {
		return err
	}

	fmt.Printf("DC gain: %.4f\n", response.DCGain(coeffs, fracBits))
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bin\tFreq [Hz]\tMag [dB]\n")
	step := max(len(db)/16, 1)
	for k := 0; k < len(db); k += step {
		fmt.Fprintf(tw, "%d\t%.1f\t%.2f\n", k, response.BinFrequency(k, size, sampleRate), db[k])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	fmt.Println()
	return nil
}

func formatSamples(s []int16) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(int(v))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
