package app

import (
	"sync"

	"hanzi-quiz-service/internal/domain"
	"hanzi-quiz-service/internal/game"
)

// Session hosts one player's engine server-side. The engine itself is pure
// and lock-free; this wrapper serializes access to it, which is the host's
// responsibility.
type Session struct {
	id     string
	mu     sync.Mutex
	engine *game.Engine
}

// NewSession is exported for infrastructure layers that need to seed sessions.
func NewSession(id string, questions []domain.Question) *Session {
	return &Session{id: id, engine: game.New(questions)}
}

// ID returns the session's identifier.
func (s *Session) ID() string { return s.id }

func (s *Session) selectOption(index int) domain.GameSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SelectOption(index)
	return s.snapshotLocked()
}

func (s *Session) advance() domain.GameSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Advance()
	return s.snapshotLocked()
}

func (s *Session) restart(questions []domain.Question) domain.GameSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Restart(questions)
	return s.snapshotLocked()
}

func (s *Session) snapshot() domain.GameSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() domain.GameSnapshot {
	snap := s.engine.Snapshot()
	snap.SessionID = s.id
	return snap
}
