package notifier

import "github.com/dmitrymomot/notifystream/pkg/statemachine"

// State is the connection lifecycle state.
type State string

const (
	StateIdle             State = "idle"
	StateConnecting       State = "connecting"
	StateConnected        State = "connected"
	StateError            State = "error"
	StateReconnectPending State = "reconnect_pending"
	StateStopped          State = "stopped"
)

func (s State) String() string {
	return string(s)
}

type event string

const (
	evConnect  event = "connect"
	evOpened   event = "opened"
	evFail     event = "fail"
	evSchedule event = "schedule"
	evRetry    event = "retry"
	evStop     event = "stop"
)

func newLifecycle() *statemachine.Machine[State, event] {
	m := statemachine.New[State, event](StateIdle).
		Allow(StateIdle, evConnect, StateConnecting).
		Allow(StateConnecting, evOpened, StateConnected).
		Allow(StateConnecting, evFail, StateError).
		Allow(StateConnected, evFail, StateError).
		Allow(StateError, evSchedule, StateReconnectPending).
		Allow(StateReconnectPending, evRetry, StateConnecting)

	for _, s := range []State{StateConnecting, StateConnected, StateError, StateReconnectPending} {
		m.Allow(s, evStop, StateStopped)
	}
	return m
}
