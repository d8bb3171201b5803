package domain

// OptionCount is the number of candidate translations every question carries.
const OptionCount = 4

// DefaultSessionSize is the number of questions in one play-through.
const DefaultSessionSize = 10

// Question is one translation quiz item: a Chinese sentence, its pinyin
// transliteration, four candidate English translations, and the index of the
// correct one. Questions are immutable once admitted into the bank.
type Question struct {
	ID           int      `json:"id"`
	SourceText   string   `json:"chinese"`
	PhoneticHint string   `json:"pinyin"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// QuestionDraft is a candidate question before the bank assigns it an id.
type QuestionDraft struct {
	SourceText   string   `json:"chinese"`
	PhoneticHint string   `json:"pinyin"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// Phase is the lifecycle state of a play-through.
type Phase string

const (
	// PhasePlaying means the session still has unanswered or unadvanced questions.
	PhasePlaying Phase = "playing"
	// PhaseResults is the terminal state reached after advancing past the last question.
	PhaseResults Phase = "results"
	// PhaseEmpty means the session was built with no questions and has nothing to play.
	PhaseEmpty Phase = "empty"
)

// OptionView is an option as shown to the player. Reveal fields are only
// populated once the current question's answer lock has engaged.
type OptionView struct {
	Index         int    `json:"index"`
	Text          string `json:"text"`
	Correct       bool   `json:"correct,omitempty"`
	WrongSelected bool   `json:"wrongSelected,omitempty"`
}

// GameSnapshot is a read-only view of a session, shaped for clients. It never
// leaks the correct index of an unanswered question.
type GameSnapshot struct {
	SessionID      string       `json:"sessionId,omitempty"`
	Phase          Phase        `json:"phase"`
	QuestionNumber int          `json:"questionNumber"`
	TotalQuestions int          `json:"totalQuestions"`
	Score          int          `json:"score"`
	SourceText     string       `json:"chinese,omitempty"`
	PhoneticHint   string       `json:"pinyin,omitempty"`
	Options        []OptionView `json:"options,omitempty"`
	Answered       bool         `json:"answered"`
	SelectedOption *int         `json:"selectedOption,omitempty"`
}
