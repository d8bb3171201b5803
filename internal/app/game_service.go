// Package app contains the quiz use cases: starting and driving hosted
// sessions, administering the question bank, and the generation boundary.
package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"hanzi-quiz-service/internal/domain"
)

// QuestionBank abstracts the authoritative question store. Sample returns a
// uniform draw without replacement and may come up short on an undersized
// bank; the service enforces the reject-short policy on top.
type QuestionBank interface {
	Add(draft domain.QuestionDraft) domain.Question
	Sample(count int) []domain.Question
	All() []domain.Question
	Size() int
}

// SessionRepository abstracts how hosted sessions are stored (in-memory,
// Redis-tracked, etc).
type SessionRepository interface {
	Put(session *Session)
	Get(id string) (*Session, bool)
	Delete(id string)
}

// Generator is the external collaborator that produces free-form text
// expected to contain one question-shaped JSON object.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// GameService contains the core quiz use cases.
type GameService struct {
	bank        QuestionBank
	sessions    SessionRepository
	generator   Generator
	sessionSize int
	sf          singleflight.Group
}

func NewGameService(bank QuestionBank, sessions SessionRepository, generator Generator, sessionSize int) *GameService {
	if sessionSize <= 0 {
		sessionSize = domain.DefaultSessionSize
	}
	return &GameService{bank: bank, sessions: sessions, generator: generator, sessionSize: sessionSize}
}

// SampleQuestions draws a full round of questions, rejecting short draws. An
// undersized bank is a server-side failure, never a shorter session.
func (s *GameService) SampleQuestions(count int) ([]domain.Question, error) {
	questions := s.bank.Sample(count)
	if len(questions) < count {
		return nil, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientBank, len(questions), count)
	}
	return questions, nil
}

// StartSession samples a fresh round and hosts a new session over it.
func (s *GameService) StartSession(_ context.Context) (domain.GameSnapshot, error) {
	questions, err := s.SampleQuestions(s.sessionSize)
	if err != nil {
		return domain.GameSnapshot{}, err
	}
	session := NewSession(uuid.NewString(), questions)
	s.sessions.Put(session)
	return session.snapshot(), nil
}

// Snapshot returns the current view of a session.
func (s *GameService) Snapshot(id string) (domain.GameSnapshot, error) {
	session, ok := s.sessions.Get(id)
	if !ok {
		return domain.GameSnapshot{}, domain.ErrSessionNotFound
	}
	return session.snapshot(), nil
}

// SelectOption records a pick on the session's current question. A locked or
// out-of-range pick is ignored; the returned snapshot is authoritative.
func (s *GameService) SelectOption(id string, index int) (domain.GameSnapshot, error) {
	session, ok := s.sessions.Get(id)
	if !ok {
		return domain.GameSnapshot{}, domain.ErrSessionNotFound
	}
	return session.selectOption(index), nil
}

// Advance moves the session to its next question or into results.
func (s *GameService) Advance(id string) (domain.GameSnapshot, error) {
	session, ok := s.sessions.Get(id)
	if !ok {
		return domain.GameSnapshot{}, domain.ErrSessionNotFound
	}
	return session.advance(), nil
}

// Restart discards the session's progress and replays over a fresh sample.
// Fetching is the service's half of the contract; the engine only resets.
func (s *GameService) Restart(_ context.Context, id string) (domain.GameSnapshot, error) {
	session, ok := s.sessions.Get(id)
	if !ok {
		return domain.GameSnapshot{}, domain.ErrSessionNotFound
	}
	questions, err := s.SampleQuestions(s.sessionSize)
	if err != nil {
		return domain.GameSnapshot{}, err
	}
	return session.restart(questions), nil
}

// EndSession drops a hosted session. Unknown ids are ignored.
func (s *GameService) EndSession(id string) {
	s.sessions.Delete(id)
}

// AddQuestion validates a draft and admits it into the bank. The counter only
// advances on success: a rejected draft leaves no trace.
func (s *GameService) AddQuestion(draft domain.QuestionDraft) (domain.Question, error) {
	if err := domain.ValidateDraft(draft); err != nil {
		return domain.Question{}, err
	}
	return s.bank.Add(draft), nil
}

// ExportQuestions dumps the entire bank, ordered by id.
func (s *GameService) ExportQuestions() []domain.Question {
	return s.bank.All()
}

// BankSize reports how many questions the bank currently holds.
func (s *GameService) BankSize() int {
	return s.bank.Size()
}

// SessionSize returns the number of questions served per play-through.
func (s *GameService) SessionSize() int {
	return s.sessionSize
}
