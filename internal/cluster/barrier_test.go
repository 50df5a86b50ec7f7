package cluster

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestBarrier_Reusable(t *testing.T) {
	const parties = 4
	const rounds = 100

	b := NewBarrier(parties)
	if b.Parties() != parties {
		t.Fatalf("Parties() = %d, want %d", b.Parties(), parties)
	}

	var arrived [rounds]atomic.Int32
	var bad atomic.Int32
	var wg sync.WaitGroup
	wg.Add(parties)
	for range parties {
		go func() {
			defer wg.Done()
			for r := range rounds {
				arrived[r].Add(1)
				b.Wait()
				if arrived[r].Load() != parties {
					bad.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	if bad.Load() != 0 {
		t.Fatalf("%d waits returned before all parties arrived", bad.Load())
	}
}

func TestBarrier_SingleParty(t *testing.T) {
	b := NewBarrier(0)
	b.Wait()
	b.Wait()
}
