package motion

import (
	"fmt"
	"sort"
	"sync"
)

// Callback is invoked when a registered element enters the viewport
type Callback func(id string)

type watch struct {
	threshold float64
	once      bool
	inside    bool
	cb        Callback
}

// Observer is a viewport-intersection observer. One-shot registrations
// fire on their first entry and are then detached.
type Observer struct {
	mu      sync.Mutex
	watches map[string]*watch
}

// NewObserver creates an empty Observer
func NewObserver() *Observer {
	return &Observer{watches: make(map[string]*watch)}
}

// Register watches id until it becomes at least threshold visible
func (o *Observer) Register(id string, threshold float64, once bool, cb Callback) error {
	if id == "" {
		return fmt.Errorf("observer: empty id")
	}
	if threshold < 0 || threshold > 1 {
		return fmt.Errorf("observer: threshold %v out of range for %s", threshold, id)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, exists := o.watches[id]; exists {
		return fmt.Errorf("observer: %s already registered", id)
	}
	o.watches[id] = &watch{threshold: threshold, once: once, cb: cb}
	return nil
}

// Intersect reports the visible fraction of id. It returns true when the
// report fired the callback.
func (o *Observer) Intersect(id string, ratio float64) bool {
	o.mu.Lock()
	w, ok := o.watches[id]
	if !ok {
		o.mu.Unlock()
		return false
	}
	visible := ratio > 0 && ratio >= w.threshold
	if !visible {
		w.inside = false
		o.mu.Unlock()
		return false
	}
	if w.inside {
		o.mu.Unlock()
		return false
	}
	w.inside = true
	if w.once {
		delete(o.watches, id)
	}
	cb := w.cb
	o.mu.Unlock()

	if cb != nil {
		cb(id)
	}
	return true
}

// Unregister stops watching id
func (o *Observer) Unregister(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.watches, id)
}

// Pending returns the ids still being watched, sorted
func (o *Observer) Pending() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	ids := make([]string, 0, len(o.watches))
	for id := range o.watches {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
