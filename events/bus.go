// Package events is the in-process publish/subscribe mechanism that
// replaces the custom DOM events of the web client. Delivery is
// synchronous and scoped to the running process; cross-process cart
// sharing is best-effort through the shared store, not through this bus.
package events

import (
	"log"
	"sync"
)

// Event names published by the state containers.
const (
	SessionChanged = "sessionChanged"
	CartChanged    = "cartChanged"
)

type Listener func()

type subscription struct {
	id int
	fn Listener
}

type Bus struct {
	mu   sync.Mutex
	seq  int
	subs map[string][]subscription
}

func New() *Bus {
	return &Bus{subs: make(map[string][]subscription)}
}

// Subscribe registers fn for event and returns a handle that removes
// the registration. Listeners are invoked in subscription order.
func (b *Bus) Subscribe(event string, fn Listener) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	id := b.seq
	b.subs[event] = append(b.subs[event], subscription{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.subs[event]
		for i, s := range subs {
			if s.id == id {
				b.subs[event] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish invokes every listener for event synchronously, in
// subscription order, before returning. A panicking listener is
// isolated so the remaining listeners still run.
func (b *Bus) Publish(event string) {
	b.mu.Lock()
	subs := make([]subscription, len(b.subs[event]))
	copy(subs, b.subs[event])
	b.mu.Unlock()

	for _, s := range subs {
		call(event, s.fn)
	}
}

func call(event string, fn Listener) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("events: listener for %q panicked: %v", event, r)
		}
	}()
	fn()
}
