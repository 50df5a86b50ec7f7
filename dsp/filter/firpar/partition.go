package firpar

// Range is a half-open index interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of indices in r.
func (r Range) Len() int {
	return r.End - r.Start
}

// Bucket returns the output range assigned to core out of p cores for n
// samples. Every core gets n/p indices and the first n%p cores get one more,
// so buckets are contiguous, disjoint and non-increasing in size. Cores beyond
// n receive an empty range.
func Bucket(n, p, core int) (start, end int) {
	base, rem := n/p, n%p
	if core < rem {
		start = core * (base + 1)
		return start, start + base + 1
	}
	start = rem*(base+1) + (core-rem)*base
	return start, start + base
}

// Partition returns the buckets of all p cores.
func Partition(n, p int) []Range {
	out := make([]Range, p)
	for core := range out {
		out[core].Start, out[core].End = Bucket(n, p, core)
	}
	return out
}
