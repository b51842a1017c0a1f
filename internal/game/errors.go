package game

import "fmt"

// State is the lifecycle state of a Manager.
type State string

const (
	StateIdle      State = "idle"
	StateActive    State = "active"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
)

// InvalidStateError indicates an operation was called in a state that
// forbids it, e.g. answering while paused or with no active session.
type InvalidStateError struct {
	Op    string
	State State
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s in %s state", e.Op, e.State)
}

// ValidationError indicates malformed input to a public operation. Never
// retried, always surfaced to the caller.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + e.Reason
}
