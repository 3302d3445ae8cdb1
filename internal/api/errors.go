package api

import "fmt"

// SessionCreationError means the backend was unreachable during session
// creation or returned a malformed payload. The previously active session, if
// any, stays in place; callers may simply try again.
type SessionCreationError struct {
	Err error
}

func (e *SessionCreationError) Error() string {
	return fmt.Sprintf("create session: %v", e.Err)
}

func (e *SessionCreationError) Unwrap() error {
	return e.Err
}

// GenerationRequestError is a non-2xx or transport failure during code
// generation. Detail carries the backend's own message when the server
// provided one.
type GenerationRequestError struct {
	StatusCode int // 0 on transport failure
	Detail     string
	Err        error // transport cause, nil on HTTP errors
}

func (e *GenerationRequestError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return fmt.Sprintf("code generation request failed: %v", e.Err)
	}
	return fmt.Sprintf("code generation failed (HTTP %d)", e.StatusCode)
}

func (e *GenerationRequestError) Unwrap() error {
	return e.Err
}

// httpError is the generic non-2xx error for the supplemental endpoints.
type httpError struct {
	StatusCode int
	Detail     string
}

func (e *httpError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("backend returned HTTP %d", e.StatusCode)
}
