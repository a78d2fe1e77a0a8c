package state

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"tilecollapse/pkg/engine/collapse"
	"tilecollapse/pkg/engine/maze"
)

// Status is the lifecycle of a generation run
type Status int

// Run statuses
const (
	StatusIdle Status = iota
	StatusRunning
	StatusDone
	StatusCanceled
	StatusFailed
)

// String returns the name of the status
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusDone:
		return "done"
	case StatusCanceled:
		return "canceled"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MaxMessages is the number of messages a session keeps
const MaxMessages = 5

// Session is the state of the current generation run shared between the
// generating goroutine and a renderer.
//
// Guard is held by the throttles while a throttled operation mutates Maze or
// Map; readers of the grids take it too. The other fields are protected by
// an internal lock.
type Session struct {
	Guard sync.Mutex

	mu sync.Mutex

	runID    uuid.UUID
	status   Status
	err      error
	started  time.Time
	finished time.Time
	messages []string

	maze *maze.Maze
	cmap *collapse.Map
}

// NewSession creates an idle session
func NewSession() *Session {
	return &Session{
		messages: make([]string, 0),
	}
}

// Start begins a new run with a fresh run id and forgets the previous grids
func (s *Session) Start() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runID = uuid.New()
	s.status = StatusRunning
	s.err = nil
	s.started = time.Now()
	s.finished = time.Time{}
	s.maze = nil
	s.cmap = nil

	return s.runID
}

// Finish ends the run. A nil err with canceled set marks the run canceled.
func (s *Session) Finish(canceled bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.finished = time.Now()
	s.err = err
	switch {
	case err != nil:
		s.status = StatusFailed
	case canceled:
		s.status = StatusCanceled
	default:
		s.status = StatusDone
	}
}

// RunID returns the id of the current run
func (s *Session) RunID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runID
}

// Status returns the status of the current run and its error, if it failed
func (s *Session) Status() (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.err
}

// Elapsed returns how long the run took, or has been running
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started.IsZero() {
		return 0
	}
	if s.finished.IsZero() {
		return time.Since(s.started)
	}
	return s.finished.Sub(s.started)
}

// SetMaze publishes the maze of the current run
func (s *Session) SetMaze(m *maze.Maze) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maze = m
}

// SetMap publishes the map of the current run
func (s *Session) SetMap(m *collapse.Map) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cmap = m
}

// Grids returns the maze and map of the current run, either may be nil.
// Their cells may only be read while holding Guard.
func (s *Session) Grids() (*maze.Maze, *collapse.Map) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maze, s.cmap
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, msg)

	// Keep only the last MaxMessages
	if len(s.messages) > MaxMessages {
		s.messages = s.messages[len(s.messages)-MaxMessages:]
	}
}

// Messages returns a copy of the message log, oldest first
func (s *Session) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.messages)
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = make([]string, 0)
}
