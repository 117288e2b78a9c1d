package bindings

import "sync"

// registry maps handles to Go values that must not cross a binding as raw
// pointers. Handle 0 is never issued.
type registry struct {
	mu    sync.Mutex
	next  Handle
	items map[Handle]any
}

func newRegistry() *registry {
	return &registry{next: 1, items: map[Handle]any{}}
}

func (r *registry) put(v any) Handle {
	r.mu.Lock()
	h := r.next
	r.next++
	r.items[h] = v
	r.mu.Unlock()
	return h
}

func (r *registry) get(h Handle) (any, bool) {
	r.mu.Lock()
	v, ok := r.items[h]
	r.mu.Unlock()
	return v, ok
}

func (r *registry) del(h Handle) (any, bool) {
	r.mu.Lock()
	v, ok := r.items[h]
	delete(r.items, h)
	r.mu.Unlock()
	return v, ok
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
