package gamebook

import "sync"

// Observer receives a callback per parser operation. It is purely
// diagnostic: observers must not influence parsing and a nil observer is a
// no-op.
type Observer interface {
	Observe(op string)
}

// CountingObserver tallies operations by name. Safe for concurrent use so a
// single instance can watch several documents.
type CountingObserver struct {
	mu     sync.Mutex
	counts map[string]int
}

// Observe increments the count for op.
func (o *CountingObserver) Observe(op string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.counts == nil {
		o.counts = make(map[string]int)
	}
	o.counts[op]++
}

// Counts returns a copy of the tally.
func (o *CountingObserver) Counts() map[string]int {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make(map[string]int, len(o.counts))
	for k, v := range o.counts {
		out[k] = v
	}
	return out
}

func observe(o Observer, op string) {
	if o != nil {
		o.Observe(op)
	}
}
