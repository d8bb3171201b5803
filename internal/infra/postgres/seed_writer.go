package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/uptrace/bun"

	"hanzi-quiz-service/internal/domain"
)

// InsertDrafts appends drafts to the questions table. Used by the seed
// subcommand to push the canonical set into a fresh database.
func InsertDrafts(ctx context.Context, db *bun.DB, drafts []domain.QuestionDraft) error {
	for _, draft := range drafts {
		data, err := json.Marshal(draft)
		if err != nil {
			return fmt.Errorf("marshal draft: %w", err)
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO questions (data) VALUES (?::jsonb)`, string(data)); err != nil {
			return fmt.Errorf("insert draft: %w", err)
		}
	}
	return nil
}
