package memory

import (
	"testing"

	"hanzi-quiz-service/internal/domain"
)

func TestAddAssignsMonotonicIDs(t *testing.T) {
	bank := NewQuestionBank()

	last := 0
	for i := 0; i < 20; i++ {
		q := bank.Add(draft(i))
		if q.ID <= last {
			t.Fatalf("expected strictly increasing ids, got %d after %d", q.ID, last)
		}
		last = q.ID
	}
	if bank.Size() != 20 {
		t.Fatalf("expected 20 stored questions, got %d", bank.Size())
	}
}

func TestSampleIsPermutationSubset(t *testing.T) {
	bank := NewQuestionBank()
	SeedBank(bank, DefaultSeed())

	sample := bank.Sample(10)
	if len(sample) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(sample))
	}
	seen := make(map[int]struct{}, len(sample))
	for _, q := range sample {
		if _, dup := seen[q.ID]; dup {
			t.Fatalf("duplicate id %d in sample", q.ID)
		}
		if q.ID < 1 || q.ID > bank.Size() {
			t.Fatalf("sampled id %d not present in bank", q.ID)
		}
		seen[q.ID] = struct{}{}
	}
}

func TestSampleShufflesOrder(t *testing.T) {
	bank := NewQuestionBank()
	SeedBank(bank, DefaultSeed())

	first := ids(bank.Sample(10))
	// 20 identical draws in a row from 15 questions means the shuffle is broken.
	for attempt := 0; attempt < 20; attempt++ {
		if !equalIDs(first, ids(bank.Sample(10))) {
			return
		}
	}
	t.Fatalf("20 consecutive samples in identical order; shuffle looks broken")
}

func TestSampleShortBankReturnsAll(t *testing.T) {
	bank := NewQuestionBank()
	for i := 0; i < 4; i++ {
		bank.Add(draft(i))
	}

	sample := bank.Sample(10)
	if len(sample) != 4 {
		t.Fatalf("expected bank to return what it has (4), got %d", len(sample))
	}
}

func TestAddCopiesOptions(t *testing.T) {
	bank := NewQuestionBank()
	d := draft(0)
	q := bank.Add(d)

	d.Options[0] = "mutated"
	stored := bank.All()[0]
	if stored.Options[0] == "mutated" {
		t.Fatalf("bank shares option storage with the caller")
	}
	if q.Options[0] == "mutated" {
		t.Fatalf("returned question shares option storage with the caller")
	}
}

func TestAllIsOrderedByID(t *testing.T) {
	bank := NewQuestionBank()
	SeedBank(bank, DefaultSeed())

	all := bank.All()
	if len(all) != 15 {
		t.Fatalf("expected 15 seeded questions, got %d", len(all))
	}
	for i, q := range all {
		if q.ID != i+1 {
			t.Fatalf("expected id %d at position %d, got %d", i+1, i, q.ID)
		}
	}
}

func TestConcurrentAddsNeverShareIDs(t *testing.T) {
	bank := NewQuestionBank()

	const workers, perWorker = 8, 50
	done := make(chan []int, workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			assigned := make([]int, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				assigned = append(assigned, bank.Add(draft(w*perWorker+i)).ID)
			}
			done <- assigned
		}(w)
	}

	seen := make(map[int]struct{})
	for w := 0; w < workers; w++ {
		for _, id := range <-done {
			if _, dup := seen[id]; dup {
				t.Fatalf("id %d assigned twice", id)
			}
			seen[id] = struct{}{}
		}
	}
	if bank.Size() != workers*perWorker {
		t.Fatalf("expected %d records, got %d", workers*perWorker, bank.Size())
	}
}

func draft(i int) domain.QuestionDraft {
	suffix := string(rune('A' + i%26))
	return domain.QuestionDraft{
		SourceText:   "句子" + suffix,
		PhoneticHint: "jùzi " + suffix,
		Options: []string{
			"Sentence " + suffix + " one",
			"Sentence " + suffix + " two",
			"Sentence " + suffix + " three",
			"Sentence " + suffix + " four",
		},
		CorrectIndex: i % domain.OptionCount,
	}
}

func ids(questions []domain.Question) []int {
	out := make([]int, len(questions))
	for i, q := range questions {
		out[i] = q.ID
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
