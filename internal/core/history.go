package core

import (
	"time"

	"github.com/google/uuid"
)

// HistoryItem is one request/response pair in the conversation log.
// Description stays empty until the paired response arrives; a failed
// generation leaves it empty permanently.
type HistoryItem struct {
	ID          uuid.UUID
	Request     string
	Language    Language
	Framework   string // empty when not specified
	Timestamp   time.Time
	Description string // empty while the request is pending or after failure
}

// HistoryStore is the append-only conversation log for the active session.
// It has no timers or async behavior; callers mutate it only between
// suspension points of the cooperative event loop.
type HistoryStore struct {
	items []HistoryItem
}

// Append records a provisional item at request-admission time.
func (s *HistoryStore) Append(item HistoryItem) {
	s.items = append(s.items, item)
}

// PatchLast fills the description of the most recently appended item. Given
// single-flight admission at most one item can be pending, so no identity
// search is needed; the item's position never changes.
func (s *HistoryStore) PatchLast(description string) {
	if len(s.items) == 0 {
		return
	}
	s.items[len(s.items)-1].Description = description
}

// Clear empties the log. Called at session boundaries and on an acknowledged
// history clear.
func (s *HistoryStore) Clear() {
	s.items = nil
}

// Snapshot returns a copy of the log in insertion (chronological) order.
func (s *HistoryStore) Snapshot() []HistoryItem {
	out := make([]HistoryItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *HistoryStore) Len() int {
	return len(s.items)
}
