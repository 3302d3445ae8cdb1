package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session is the server-assigned conversation scope. History and results are
// implicitly scoped to the active session; superseding a session discards
// them rather than merging.
type Session struct {
	ID        string
	CreatedAt time.Time
}

// RequestState is the generation request lifecycle. Loading is the only
// admission-blocking state; Succeeded and Failed are recorded as the outcome
// of the last request while the machine settles back to Idle.
type RequestState int

const (
	Idle RequestState = iota
	Loading
	Succeeded
	Failed
)

// GenerationRequest is a submission as entered by the user, before admission.
type GenerationRequest struct {
	Description string
	Language    Language
	Framework   string // empty when not specified
}

// OrchestrationState owns every piece of client-visible session state: the
// active session identity, the conversation history, the latest result, and
// the single-flight request flag. All transitions are total; mutation is safe
// because callers run them on one cooperative event loop between suspension
// points.
type OrchestrationState interface {
	ActiveSession() (Session, bool)
	BeginSession(s Session)
	EndSession()

	RequestState() RequestState
	LastOutcome() RequestState
	Admit(req GenerationRequest) (HistoryItem, error)
	CompleteGeneration(description string, res GenerationResult)
	FailGeneration()

	History() []HistoryItem
	HistoryLen() int
	ClearHistory()
	Result() (GenerationResult, bool)
}

// State is the canonical OrchestrationState implementation.
type State struct {
	session *Session
	history HistoryStore
	result  ResultHolder

	requestState RequestState
	lastOutcome  RequestState

	now func() time.Time
}

func NewState() *State {
	return &State{now: time.Now}
}

var _ OrchestrationState = (*State)(nil)

// ActiveSession returns the current session, if one exists.
func (s *State) ActiveSession() (Session, bool) {
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

// BeginSession installs a freshly created session and resets everything
// scoped to the previous one. Prior history and result are discarded, never
// merged.
func (s *State) BeginSession(sess Session) {
	s.session = &sess
	s.history.Clear()
	s.result.Clear()
	s.requestState = Idle
	s.lastOutcome = Idle
}

// EndSession drops the active session and its dependent state.
func (s *State) EndSession() {
	s.session = nil
	s.history.Clear()
	s.result.Clear()
	s.requestState = Idle
	s.lastOutcome = Idle
}

func (s *State) RequestState() RequestState {
	return s.requestState
}

// LastOutcome reports how the most recent generation finished, Idle if none
// has run in this session.
func (s *State) LastOutcome() RequestState {
	return s.lastOutcome
}

// Admit runs the submission preconditions and, when they pass, transitions to
// Loading and appends the provisional history item. Precondition order: no
// session, already in flight, empty description. None of the failures touch
// history or result.
func (s *State) Admit(req GenerationRequest) (HistoryItem, error) {
	if s.session == nil {
		return HistoryItem{}, ErrNoActiveSession
	}
	if s.requestState == Loading {
		return HistoryItem{}, ErrRequestInFlight
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return HistoryItem{}, ErrEmptyRequest
	}

	item := HistoryItem{
		ID:        uuid.New(),
		Request:   description,
		Language:  req.Language,
		Framework: req.Framework,
		Timestamp: s.now(),
	}
	s.history.Append(item)
	s.requestState = Loading
	return item, nil
}

// CompleteGeneration settles a successful request: the provisional item gets
// its description, the result is replaced wholesale, and the machine returns
// to Idle through Succeeded.
func (s *State) CompleteGeneration(description string, res GenerationResult) {
	s.history.PatchLast(description)
	s.result.Show(res)
	s.lastOutcome = Succeeded
	s.requestState = Idle
}

// FailGeneration settles a failed request. The provisional item keeps its
// empty description permanently; the previous result, if any, survives.
func (s *State) FailGeneration() {
	s.lastOutcome = Failed
	s.requestState = Idle
}

func (s *State) History() []HistoryItem {
	return s.history.Snapshot()
}

func (s *State) HistoryLen() int {
	return s.history.Len()
}

// ClearHistory empties the conversation log without touching the session or
// the latest result. Used when the server acknowledges a history clear.
func (s *State) ClearHistory() {
	s.history.Clear()
}

func (s *State) Result() (GenerationResult, bool) {
	return s.result.Current()
}
