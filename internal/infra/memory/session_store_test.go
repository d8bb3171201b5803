package memory

import (
	"testing"

	"hanzi-quiz-service/internal/app"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()
	bank := NewQuestionBank()
	SeedBank(bank, DefaultSeed())

	session := app.NewSession("s1", bank.Sample(10))
	store.Put(session)
	if got, ok := store.Get("s1"); !ok || got != session {
		t.Fatalf("expected stored session back, got %v (ok=%v)", got, ok)
	}

	store.Delete("s1")
	if _, ok := store.Get("s1"); ok {
		t.Fatalf("expected session removed")
	}
}
