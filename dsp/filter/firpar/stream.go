package firpar

import "fmt"

// Stream filters an unbounded signal tile by tile on a Kernel, carrying the
// delay line between invocations. The delay line starts at zero.
//
// A Stream is not safe for concurrent use.
type Stream struct {
	kernel   *Kernel
	entry    *Entry
	coeffs   []int16
	history  []int16
	norm     uint
	tileSize int
	args     Args
}

// NewStream returns a stream filtering with coeffs and norm on k. The
// coefficients are copied.
func NewStream(k *Kernel, coeffs []int16, norm uint, opts ...StreamOption) (*Stream, error) {
	cfg := streamConfig{tileSize: DefaultTileSize, variant: VariantAuto}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(coeffs) == 0 {
		return nil, ErrNoCoeffs
	}
	if cfg.tileSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTile, cfg.tileSize)
	}
	if err := cfg.variant.Check(len(coeffs)); err != nil {
		return nil, err
	}

	c := make([]int16, len(coeffs))
	copy(c, coeffs)

	return &Stream{
		kernel:   k,
		entry:    k.engine(cfg.variant, len(c)),
		coeffs:   c,
		history:  make([]int16, len(c)-1),
		norm:     norm,
		tileSize: cfg.tileSize,
	}, nil
}

// TileSize returns the number of samples per kernel invocation.
func (s *Stream) TileSize() int {
	return s.tileSize
}

// Variant returns the engine the stream runs.
func (s *Stream) Variant() Variant {
	return s.entry.Variant
}

// Process filters src into dst, continuing from the previous call. dst must
// not overlap src.
func (s *Stream) Process(dst, src []int16) error {
	if len(dst) < len(src) {
		return fmt.Errorf("%w: %d < %d", ErrShortOutput, len(dst), len(src))
	}

	a := &s.args
	a.History = s.history
	a.Coeffs = s.coeffs
	a.NCoeffs = len(s.coeffs)
	a.Norm = s.norm

	for off := 0; off < len(src); off += s.tileSize {
		end := min(off+s.tileSize, len(src))
		a.In = src[off:end]
		a.Out = dst[off:end]
		a.NSamples = end - off
		s.kernel.run(a, s.entry.compute)
	}

	a.In, a.Out = nil, nil
	return nil
}

// History returns a copy of the current delay line.
func (s *Stream) History() []int16 {
	h := make([]int16, len(s.history))
	copy(h, s.history)
	return h
}

// Reset zeroes the delay line.
func (s *Stream) Reset() {
	clear(s.history)
}
