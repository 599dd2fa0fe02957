// Package refresh serializes the application of overlapping
// fetch-and-aggregate cycles. A user-triggered refresh can race a
// periodic poll; whichever cycle's results are applied last must win,
// so stale results are discarded by sequence number.
package refresh

import "sync"

// Gate hands out monotonically increasing cycle numbers and applies
// only results that are newer than the last one applied.
type Gate struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
}

func NewGate() *Gate {
	return &Gate{}
}

// Next reserves the sequence number for a cycle about to start.
func (g *Gate) Next() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.issued++
	return g.issued
}

// Apply runs fn only if no newer cycle has been applied yet and
// reports whether it ran. A cycle that finishes after a newer one has
// already been applied is dropped.
func (g *Gate) Apply(seq uint64, fn func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if seq <= g.applied {
		return false
	}
	g.applied = seq
	fn()
	return true
}
