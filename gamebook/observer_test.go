package gamebook

import (
	"sync"
	"testing"
)

func TestCountingObserver(t *testing.T) {
	obs := &CountingObserver{}
	obs.Observe("assemble")
	obs.Observe("tokenize_drive")
	obs.Observe("tokenize_drive")

	counts := obs.Counts()
	assertEqual(t, counts["assemble"], 1)
	assertEqual(t, counts["tokenize_drive"], 2)
	assertEqual(t, counts["never_seen"], 0)

	// Counts hands out a copy.
	counts["assemble"] = 99
	assertEqual(t, obs.Counts()["assemble"], 1)
}

func TestCountingObserver_Concurrent(t *testing.T) {
	obs := &CountingObserver{}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				obs.Observe("op")
			}
		}()
	}
	wg.Wait()

	assertEqual(t, obs.Counts()["op"], 800)
}

func TestObserveNilIsNoOp(t *testing.T) {
	observe(nil, "anything") // must not panic
}
