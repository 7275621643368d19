package statemachine

import (
	"fmt"
	"sync"
)

// Listener observes a completed transition.
type Listener[S, E comparable] func(from, to S, event E)

// Machine is a finite state machine over states S and events E.
type Machine[S, E comparable] struct {
	mu          sync.RWMutex
	initial     S
	current     S
	transitions map[S]map[E]S
	listeners   []Listener[S, E]
}

// New creates a machine in the initial state.
func New[S, E comparable](initial S) *Machine[S, E] {
	return &Machine[S, E]{
		initial:     initial,
		current:     initial,
		transitions: make(map[S]map[E]S),
	}
}

// Allow registers from --event--> to. A later registration for the same
// from/event pair replaces the earlier one.
func (m *Machine[S, E]) Allow(from S, event E, to S) *Machine[S, E] {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transitions[from]; !ok {
		m.transitions[from] = make(map[E]S)
	}
	m.transitions[from][event] = to
	return m
}

// OnTransition adds a listener.
func (m *Machine[S, E]) OnTransition(l Listener[S, E]) *Machine[S, E] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
	return m
}

// Current returns the current state.
func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the machine is in state s.
func (m *Machine[S, E]) Is(s S) bool {
	return m.Current() == s
}

// CanFire reports whether event is allowed from the current state.
func (m *Machine[S, E]) CanFire(event E) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.transitions[m.current][event]
	return ok
}

// Fire applies event and returns the new state.
func (m *Machine[S, E]) Fire(event E) (S, error) {
	m.mu.Lock()
	from := m.current
	to, ok := m.transitions[from][event]
	if !ok {
		m.mu.Unlock()
		return from, fmt.Errorf("%w: from %v on %v", ErrNoTransition, from, event)
	}
	m.current = to
	listeners := m.listeners
	m.mu.Unlock()

	for _, l := range listeners {
		l(from, to, event)
	}
	return to, nil
}

// Reset returns the machine to its initial state without notifying listeners.
func (m *Machine[S, E]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}
