// Package postgres supplies the boot-time question source. The live bank is
// memory-resident and volatile; Postgres only feeds it at startup and holds
// the curated set between deploys.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"hanzi-quiz-service/internal/domain"
)

// QuestionLoader reads question drafts (JSONB) from Postgres.
type QuestionLoader struct {
	pool *pgxpool.Pool
}

func NewQuestionLoader(pool *pgxpool.Pool) *QuestionLoader {
	return &QuestionLoader{pool: pool}
}

// LoadDrafts returns every stored draft in insertion order. Malformed rows
// fail the whole load; a partially seeded bank is worse than a loud boot
// failure.
func (l *QuestionLoader) LoadDrafts(ctx context.Context) ([]domain.QuestionDraft, error) {
	rows, err := l.pool.Query(ctx, `SELECT data FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	defer rows.Close()

	var drafts []domain.QuestionDraft
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		var draft domain.QuestionDraft
		if err := json.Unmarshal(raw, &draft); err != nil {
			return nil, fmt.Errorf("unmarshal question: %w", err)
		}
		if err := domain.ValidateDraft(draft); err != nil {
			return nil, fmt.Errorf("stored question rejected: %w", err)
		}
		drafts = append(drafts, draft)
	}
	return drafts, rows.Err()
}
