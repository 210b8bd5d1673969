package view

import "sync"

// View is what the navigator can switch between.
type View interface {
	State() State
	Discard()
}

// Navigator tracks the view on screen. Opening a view discards the
// previous one, so its late results cannot land on the new screen.
type Navigator struct {
	mu      sync.Mutex
	current View
}

// Open makes v current and discards whatever was current before.
func (n *Navigator) Open(v View) {
	n.mu.Lock()
	prev := n.current
	n.current = v
	n.mu.Unlock()
	if prev != nil && prev != v {
		prev.Discard()
	}
}

// Current returns the view on screen, or nil.
func (n *Navigator) Current() View {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Close discards the current view and leaves nothing on screen.
func (n *Navigator) Close() {
	n.Open(nil)
}
