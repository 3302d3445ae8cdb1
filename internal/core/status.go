package core

import "time"

// StatusKind classifies a transient status banner.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusLoading
	StatusSuccess
	StatusError
)

// DismissAfter is how long success and error statuses stay visible before
// auto-clearing. Loading statuses persist until replaced.
const DismissAfter = 3 * time.Second

// Notifier holds the single visible status. A new Show always supersedes the
// previous status; the sequence number it returns lets the event loop discard
// auto-clear timers that a later status has already invalidated.
type Notifier struct {
	message string
	kind    StatusKind
	seq     int
}

// Show replaces the current status and returns the sequence number a pending
// auto-clear must present to Expire.
func (n *Notifier) Show(message string, kind StatusKind) int {
	n.seq++
	n.message = message
	n.kind = kind
	return n.seq
}

// Expire clears the status addressed by seq. It reports whether anything was
// cleared: a stale seq means a newer status superseded this timer, and
// loading statuses never expire.
func (n *Notifier) Expire(seq int) bool {
	if seq != n.seq || n.kind == StatusLoading || n.kind == StatusNone {
		return false
	}
	n.message = ""
	n.kind = StatusNone
	return true
}

// Current returns the visible status, if any.
func (n *Notifier) Current() (string, StatusKind) {
	return n.message, n.kind
}

func (n *Notifier) Visible() bool {
	return n.kind != StatusNone
}
