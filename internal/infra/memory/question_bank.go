package memory

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"hanzi-quiz-service/internal/domain"
)

// QuestionBank is the authoritative in-memory question store. Identity is a
// single monotonically increasing counter that only advances on a successful
// add, so ids are never reused. The bank is volatile: it lives and dies with
// the process.
type QuestionBank struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]domain.Question
	rnd    *rand.Rand
}

func NewQuestionBank() *QuestionBank {
	return &QuestionBank{
		nextID: 1,
		byID:   make(map[int]domain.Question),
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Add assigns the next id to a well-formed draft and stores it. Shape
// validation happens at the boundary before a draft reaches the bank, so Add
// itself cannot fail. "Read counter, store, advance counter" is one atomic
// unit: concurrent adds never share an id and never lose a record.
func (b *QuestionBank) Add(draft domain.QuestionDraft) domain.Question {
	b.mu.Lock()
	defer b.mu.Unlock()

	question := domain.Question{
		ID:           b.nextID,
		SourceText:   draft.SourceText,
		PhoneticHint: draft.PhoneticHint,
		Options:      append([]string(nil), draft.Options...),
		CorrectIndex: draft.CorrectIndex,
	}
	b.byID[question.ID] = question
	b.nextID++
	return question
}

// Sample draws min(count, size) questions uniformly at random without
// replacement: a Fisher–Yates shuffle over the entire bank, then a prefix.
// Every permutation of the bank is equally likely; no seeding contract is
// exposed. An undersized bank returns what it has — rejecting short results
// is the caller's policy, not the bank's.
func (b *QuestionBank) Sample(count int) []domain.Question {
	b.mu.Lock()
	defer b.mu.Unlock()

	all := b.snapshotLocked()
	for i := len(all) - 1; i > 0; i-- {
		j := b.rnd.Intn(i + 1)
		all[i], all[j] = all[j], all[i]
	}
	if count < len(all) {
		all = all[:count]
	}
	return all
}

// All enumerates the full bank ordered by id, for export.
func (b *QuestionBank) All() []domain.Question {
	b.mu.Lock()
	defer b.mu.Unlock()

	all := b.snapshotLocked()
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// Size returns the number of stored questions.
func (b *QuestionBank) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.byID)
}

func (b *QuestionBank) snapshotLocked() []domain.Question {
	all := make([]domain.Question, 0, len(b.byID))
	for _, q := range b.byID {
		all = append(all, q)
	}
	return all
}
