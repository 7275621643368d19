package statemachine

import "errors"

// ErrNoTransition indicates the event is not allowed from the current state.
var ErrNoTransition = errors.New("statemachine: no transition available")
