package firpar

// updateDelayLine rewrites a.History with the last NCoeffs-1 samples of the
// window so that the next tile sees a contiguous stream.
func updateDelayLine(a *Args) {
	if a.NCoeffs <= 1 {
		return
	}
	carryHistory(a.History[:a.NCoeffs-1], a.In[:a.NSamples])
}

// carryHistory replaces history with the tail of history ++ input. A tile
// shorter than the delay line shifts the old history down and appends the
// tile.
func carryHistory(history, input []int16) {
	w := NewWindow(history, input)
	w.CopyTo(history, w.Len()-len(history))
}
