// internal/balance/tracker.go
package balance

import (
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
)

// Update is a snapshot of the tracked balance.
type Update struct {
	Address    *solana.PublicKey
	Value      Value
	Err        error
	Generation uint64
	Seq        uint64
	At         time.Time
}

// Tracker orders balance read results. Each address change starts a new
// generation, and within a generation only a result newer than the last
// applied one is accepted.
type Tracker struct {
	mu         sync.Mutex
	generation uint64
	issued     uint64
	applied    uint64
	current    Update
}

// NewTracker returns a tracker with an unknown balance.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Reset starts a new generation for address and clears the value.
func (t *Tracker) Reset(address *solana.PublicKey) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if address != nil {
		pk := *address
		address = &pk
	}

	t.generation++
	t.issued = 0
	t.applied = 0
	t.current = Update{
		Address:    address,
		Generation: t.generation,
		At:         time.Now(),
	}
	return t.generation
}

// Begin reserves a sequence number for a read in the current generation.
func (t *Tracker) Begin() (generation, seq uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.issued++
	return t.generation, t.issued
}

// Apply records the outcome of a read. A failed read sets the value to
// unknown. It returns false when the result is stale and was dropped.
func (t *Tracker) Apply(generation, seq uint64, lamports uint64, err error) (Update, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if generation != t.generation || seq <= t.applied {
		return t.current, false
	}

	t.applied = seq
	t.current.Seq = seq
	t.current.At = time.Now()
	t.current.Err = err
	if err != nil {
		t.current.Value = Unknown()
	} else {
		t.current.Value = FromLamports(lamports)
	}
	return t.current, true
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() Update {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Supersedes reports whether u is at least as new as prev. Consumers that
// receive updates over a channel use it to ignore leftovers from an earlier
// generation.
func (u Update) Supersedes(prev Update) bool {
	if u.Generation != prev.Generation {
		return u.Generation > prev.Generation
	}
	return u.Seq >= prev.Seq
}
