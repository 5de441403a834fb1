// Package tracer implements the explainability component: an append-only
// store of every TracedValue produced during a compute, plus the
// graph-walk and sentence-building that turns a nodeId into a human
// explanation.
package tracer

import (
	"fmt"

	"github.com/form1040/taxengine/pkg/money"
)

// Store is the single append-only map every schedule writes its traced
// values into. It is not safe for concurrent writes; the state-module
// fan-out (SPEC_FULL.md §7) gives each goroutine its own Store and merges
// afterward.
type Store struct {
	values map[string]money.TracedValue
	order  []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string]money.TracedValue)}
}

// Put registers v under its own NodeID and returns v unchanged, so callers
// can write `x := store.Put(money.Sum(...))` inline. Registering the same
// nodeId twice with a different amount is a programming defect.
func (s *Store) Put(v money.TracedValue) money.TracedValue {
	if existing, ok := s.values[v.NodeID]; ok && existing.Amount != v.Amount {
		panic(fmt.Sprintf("tracer: nodeId %q registered twice with different amounts (%d vs %d)", v.NodeID, existing.Amount, v.Amount))
	}
	if _, ok := s.values[v.NodeID]; !ok {
		s.order = append(s.order, v.NodeID)
	}
	s.values[v.NodeID] = v
	return v
}

// Get looks up a TracedValue by nodeId.
func (s *Store) Get(nodeID string) (money.TracedValue, bool) {
	v, ok := s.values[nodeID]
	return v, ok
}

// All returns a snapshot of every registered value, keyed by nodeId. The
// returned map is a copy; mutating it does not affect the store. Like any
// Go map it carries no order; Merge is what follows registration order.
func (s *Store) All() map[string]money.TracedValue {
	out := make(map[string]money.TracedValue, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Merge copies every value from other into s. Used to fold a state module's
// per-goroutine store back into the federal store after concurrent dispatch.
func (s *Store) Merge(other *Store) {
	for _, id := range other.order {
		s.Put(other.values[id])
	}
}
