// Package network reports whether the sync server is reachable and notifies
// subscribers about online/offline transitions.
package network

import (
	"sync"
)

// Monitor is the connectivity source consulted before every sync cycle.
type Monitor interface {
	IsOnline() bool
	// Subscribe registers fn for transitions and returns a function that
	// removes it. fn is not called for the current state.
	Subscribe(fn func(online bool)) (unsubscribe func())
}

type offline struct{}

// Offline returns a Monitor that is never online. It is the default when no
// monitor is configured, so that sync never starts by accident.
func Offline() Monitor {
	return offline{}
}

func (offline) IsOnline() bool { return false }

func (offline) Subscribe(func(bool)) func() { return func() {} }

// Manual is a Monitor whose state is set explicitly.
type Manual struct {
	mu     sync.Mutex
	online bool
	nextID int
	subs   map[int]func(bool)
}

func NewManual(online bool) *Manual {
	return &Manual{
		online: online,
		subs:   make(map[int]func(bool)),
	}
}

func (m *Manual) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

func (m *Manual) Subscribe(fn func(bool)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

// SetOnline updates the state and, if it changed, calls every subscriber
// synchronously in the caller's goroutine.
func (m *Manual) SetOnline(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	subs := make([]func(bool), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(online)
	}
}
