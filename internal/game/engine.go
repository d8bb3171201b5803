// Package game implements the quiz play-through state machine: question
// progression, the answer lock, and score accrual over a fixed question list.
package game

import "hanzi-quiz-service/internal/domain"

const noSelection = -1

// Engine drives exactly one play-through over an ordered question list fixed
// at construction time. It holds no locks: an engine instance is owned by a
// single session context and the host serializes calls into it.
type Engine struct {
	questions []domain.Question
	current   int
	score     int
	phase     domain.Phase
	selected  int
	answered  bool
}

// New builds an engine over the given questions. An empty list yields the
// distinct "empty" phase instead of an unplayable playing state.
func New(questions []domain.Question) *Engine {
	e := &Engine{}
	e.Restart(questions)
	return e
}

// Restart resets the engine over a fresh question list. This is the local
// half of the restart contract: obtaining new questions is the caller's job,
// since fetching is I/O and reset is pure state.
func (e *Engine) Restart(questions []domain.Question) {
	e.questions = questions
	e.current = 0
	e.score = 0
	e.selected = noSelection
	e.answered = false
	if len(questions) == 0 {
		e.phase = domain.PhaseEmpty
		return
	}
	e.phase = domain.PhasePlaying
}

// SelectOption records the player's pick for the current question. Once a
// selection is made the question is locked: repeat calls are no-ops and can
// neither change the selection nor re-score. Returns whether the selection
// was applied.
func (e *Engine) SelectOption(index int) bool {
	if e.phase != domain.PhasePlaying || e.answered {
		return false
	}
	if index < 0 || index >= len(e.questions[e.current].Options) {
		return false
	}
	e.selected = index
	e.answered = true
	if index == e.questions[e.current].CorrectIndex {
		e.score++
	}
	return true
}

// Advance moves to the next question, or to the results phase when called on
// the last one. Outside the playing phase it is a no-op. Returns whether the
// transition was applied.
func (e *Engine) Advance() bool {
	if e.phase != domain.PhasePlaying {
		return false
	}
	if e.current < len(e.questions)-1 {
		e.current++
		e.selected = noSelection
		e.answered = false
		return true
	}
	// current stays on the last question so the index invariant holds in results.
	e.phase = domain.PhaseResults
	return true
}

// Phase returns the engine's lifecycle state.
func (e *Engine) Phase() domain.Phase { return e.phase }

// Score returns the number of correct selections recorded so far.
func (e *Engine) Score() int { return e.score }

// Answered reports whether the current question's answer lock has engaged.
func (e *Engine) Answered() bool { return e.answered }

// SelectedOption returns the recorded selection for the current question and
// whether one exists.
func (e *Engine) SelectedOption() (int, bool) {
	if e.selected == noSelection {
		return 0, false
	}
	return e.selected, true
}

// Progress returns the 1-based question number and the session length.
func (e *Engine) Progress() (number, total int) {
	return e.current + 1, len(e.questions)
}

// IsCorrectOption reports whether option i is the current question's answer.
func (e *Engine) IsCorrectOption(i int) bool {
	if len(e.questions) == 0 {
		return false
	}
	return i == e.questions[e.current].CorrectIndex
}

// IsWrongSelected reports whether option i was picked and is not the answer.
func (e *Engine) IsWrongSelected(i int) bool {
	return e.answered && i == e.selected && !e.IsCorrectOption(i)
}

// Snapshot renders the engine state for clients. The correct index is only
// revealed through the option views once the current question is answered.
func (e *Engine) Snapshot() domain.GameSnapshot {
	snap := domain.GameSnapshot{
		Phase:          e.phase,
		TotalQuestions: len(e.questions),
		Score:          e.score,
		Answered:       e.answered,
	}
	if e.phase == domain.PhaseEmpty {
		return snap
	}
	snap.QuestionNumber = e.current + 1
	if e.phase != domain.PhasePlaying {
		return snap
	}

	q := e.questions[e.current]
	snap.SourceText = q.SourceText
	snap.PhoneticHint = q.PhoneticHint
	snap.Options = make([]domain.OptionView, len(q.Options))
	for i, text := range q.Options {
		view := domain.OptionView{Index: i, Text: text}
		if e.answered {
			view.Correct = e.IsCorrectOption(i)
			view.WrongSelected = e.IsWrongSelected(i)
		}
		snap.Options[i] = view
	}
	if e.answered {
		selected := e.selected
		snap.SelectedOption = &selected
	}
	return snap
}
