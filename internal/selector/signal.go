package selector

import "sync"

// BoolSignal is a subscribable boolean, used for the "is the viewport
// narrow" responsiveness input. It always has a defined value: until the
// host reports a real width the viewport is treated as wide (false), so
// a first render before the signal initializes is deterministic.
type BoolSignal struct {
	mu     sync.Mutex
	value  bool
	nextID int
	subs   map[int]func(bool)
}

// NewBoolSignal returns a signal holding initial.
func NewBoolSignal(initial bool) *BoolSignal {
	return &BoolSignal{value: initial, subs: make(map[int]func(bool))}
}

// Get returns the current value.
func (s *BoolSignal) Get() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set updates the value, notifying subscribers only on change.
func (s *BoolSignal) Set(v bool) {
	s.mu.Lock()
	if s.value == v {
		s.mu.Unlock()
		return
	}
	s.value = v
	fns := make([]func(bool), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Subscribe registers fn for change notifications and returns its
// cancel func. Cancel is idempotent; after it runs fn is never called
// again, so teardown cannot leak callbacks into a disposed component.
func (s *BoolSignal) Subscribe(fn func(bool)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
