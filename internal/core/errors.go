package core

import "errors"

// Admission errors returned by State.Admit. Each one is terminal for the
// attempted submission and leaves history and result untouched.
var (
	ErrNoActiveSession = errors.New("no active session: create a session first")
	ErrEmptyRequest    = errors.New("request description is empty")

	// ErrRequestInFlight signals that a generation request is already running.
	// Callers treat it as a no-op rather than a user-facing failure.
	ErrRequestInFlight = errors.New("generation request already in flight")
)
