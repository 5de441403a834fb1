package states

import "sync"

// Registry holds every registered StateModule keyed by state code. A
// zero-value Registry is ready to use.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]StateModule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]StateModule)}
}

// Register adds m to the registry under m.StateCode, overwriting any
// previous registration for that code. Called once per state package at
// registry construction; never called concurrently with Get/All in
// practice, but safe if it is.
func (r *Registry) Register(m StateModule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.modules == nil {
		r.modules = make(map[string]StateModule)
	}
	r.modules[m.StateCode] = m
}

// Get looks up a module by state code. Unknown codes return the zero
// StateModule and false; the caller decides the fallback.
func (r *Registry) Get(code string) (StateModule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[code]
	return m, ok
}

// All returns every registered module, ordered by state code.
func (r *Registry) All() []StateModule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]string, 0, len(r.modules))
	for code := range r.modules {
		codes = append(codes, code)
	}
	// simple insertion sort: the registry never holds more than a
	// handful of states, so an O(n^2) sort keeps this dependency-free.
	for i := 1; i < len(codes); i++ {
		for j := i; j > 0 && codes[j] < codes[j-1]; j-- {
			codes[j], codes[j-1] = codes[j-1], codes[j]
		}
	}
	out := make([]StateModule, len(codes))
	for i, code := range codes {
		out[i] = r.modules[code]
	}
	return out
}
