// Package statemachine provides a small, thread-safe finite state machine
// keyed by comparable state and event types.
//
// Transitions are registered up front with Allow and triggered with Fire.
// Firing an event that has no transition from the current state returns an
// error wrapping ErrNoTransition and leaves the state unchanged.
//
//	m := statemachine.New(Idle).
//	    Allow(Idle, Connect, Connecting).
//	    Allow(Connecting, Opened, Connected)
//
//	if _, err := m.Fire(Connect); err != nil {
//	    // not allowed from the current state
//	}
//
// Listeners registered with OnTransition run after the state changes, outside
// the machine's lock, so they may call Current.
package statemachine
