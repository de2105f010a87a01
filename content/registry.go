package content

import "sync"

// Registry is the in-memory record store, keyed by slug. Registration
// normally happens once at boot; the lock keeps late registration safe
// anyway.
type Registry struct {
	mu    sync.RWMutex
	byKey map[string]Article
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]Article)}
}

// Register inserts or replaces the record under its key. Re-registering
// an existing key swaps the payload in place: the registry does not
// grow and the record keeps its original position in listings.
func (r *Registry) Register(a Article) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byKey[a.Key]; !ok {
		r.order = append(r.order, a.Key)
	}
	r.byKey[a.Key] = a
}

// Get returns the record for key. The boolean is false when nothing is
// registered under key; a miss is a normal outcome, not an error.
func (r *Registry) Get(key string) (Article, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byKey[key]
	return a, ok
}

// All returns every record in registration order, published or not.
// Public listings filter on Published themselves.
func (r *Registry) All() []Article {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Article, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.byKey[k])
	}
	return out
}

// Len returns the number of registered records.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
