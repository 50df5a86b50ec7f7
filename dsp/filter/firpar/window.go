package firpar

// Window is a read-only view of a delay line followed by a tile. Index 0 is
// the oldest history sample; index len(history) is the first tile sample.
// The two segments need not be adjacent in memory.
type Window struct {
	history []int16
	input   []int16
}

// NewWindow returns the view history ++ input. Both slices are borrowed.
func NewWindow(history, input []int16) Window {
	return Window{history: history, input: input}
}

// Len returns the total number of samples in the view.
func (w Window) Len() int {
	return len(w.history) + len(w.input)
}

// HistoryLen returns the number of delay-line samples at the front.
func (w Window) HistoryLen() int {
	return len(w.history)
}

// At returns the sample at index i.
func (w Window) At(i int) int16 {
	if i < len(w.history) {
		return w.history[i]
	}
	return w.input[i-len(w.history)]
}

// Split returns the samples [i, i+n) as a history part followed by an input
// part. Either part may be empty.
func (w Window) Split(i, n int) (lo, hi []int16) {
	h := len(w.history)
	switch {
	case i >= h:
		return nil, w.input[i-h : i-h+n]
	case i+n <= h:
		return w.history[i : i+n], nil
	default:
		return w.history[i:], w.input[:i+n-h]
	}
}

// CopyTo writes the samples [i, i+len(dst)) into dst. dst may alias the
// history segment as long as it starts at or before i.
func (w Window) CopyTo(dst []int16, i int) {
	lo, hi := w.Split(i, len(dst))
	n := copy(dst, lo)
	copy(dst[n:], hi)
}
