package firpar

import "testing"

func TestPartition_Coverage(t *testing.T) {
	for p := 1; p <= 16; p++ {
		for n := 0; n <= 10000; n++ {
			next := 0
			prevLen := n + 1
			for core := range p {
				start, end := Bucket(n, p, core)
				if start != next {
					t.Fatalf("n=%d p=%d core=%d: start %d, want %d", n, p, core, start, next)
				}
				if end < start {
					t.Fatalf("n=%d p=%d core=%d: end %d < start %d", n, p, core, end, start)
				}
				if l := end - start; l > prevLen {
					t.Fatalf("n=%d p=%d core=%d: bucket grew from %d to %d", n, p, core, prevLen, l)
				} else {
					prevLen = l
				}
				next = end
			}
			if next != n {
				t.Fatalf("n=%d p=%d: buckets end at %d", n, p, next)
			}
		}
	}
}

func TestPartition_Sizes(t *testing.T) {
	tests := []struct {
		n, p int
		want []Range
	}{
		{n: 10, p: 3, want: []Range{{0, 4}, {4, 7}, {7, 10}}},
		{n: 8, p: 4, want: []Range{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{n: 2, p: 4, want: []Range{{0, 1}, {1, 2}, {2, 2}, {2, 2}}},
		{n: 0, p: 2, want: []Range{{0, 0}, {0, 0}}},
		{n: 5, p: 1, want: []Range{{0, 5}}},
	}

	for _, tt := range tests {
		got := Partition(tt.n, tt.p)
		if len(got) != len(tt.want) {
			t.Fatalf("Partition(%d, %d) returned %d ranges", tt.n, tt.p, len(got))
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Partition(%d, %d)[%d] = %v, want %v", tt.n, tt.p, i, got[i], tt.want[i])
			}
		}
	}

	if l := (Range{Start: 3, End: 7}).Len(); l != 4 {
		t.Fatalf("Range.Len() = %d, want 4", l)
	}
}
