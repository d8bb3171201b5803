package app

import (
	"context"
	"encoding/json"
	"fmt"

	"hanzi-quiz-service/internal/domain"
)

// generationPrompt is the fixed instruction sent to the language model. The
// model tends to wrap its JSON in prose, so the response is treated as free
// text and mined for the first brace-delimited object.
const generationPrompt = `Create one Chinese-to-English translation quiz question at HSK 2-4 level.
Respond with a JSON object with these fields:
  "chinese": a natural Chinese sentence,
  "pinyin": its pinyin transliteration with tone marks,
  "options": exactly 4 distinct plausible English translations,
  "correctIndex": the index (0-3) of the correct translation.
Only one option may be a correct translation of the sentence.`

// GenerateQuestion asks the external generator for a new question, extracts
// and validates it, and admits it into the bank. Any extraction, parse, or
// shape failure rejects the response without touching the bank. Concurrent
// calls are coalesced into one upstream request.
func (s *GameService) GenerateQuestion(ctx context.Context) (domain.Question, error) {
	result, err, _ := s.sf.Do("generate-question", func() (interface{}, error) {
		raw, err := s.generator.Complete(ctx, generationPrompt)
		if err != nil {
			return domain.Question{}, fmt.Errorf("generator call: %w", err)
		}
		draft, err := parseGeneratedDraft(raw)
		if err != nil {
			return domain.Question{}, err
		}
		return s.bank.Add(draft), nil
	})
	if err != nil {
		return domain.Question{}, err
	}
	return result.(domain.Question), nil
}

// parseGeneratedDraft mines free-form model output for a question draft and
// re-validates it against the question shape. This is the narrow boundary
// that keeps the generator's fragility from leaking malformed data inward.
func parseGeneratedDraft(raw string) (domain.QuestionDraft, error) {
	object, ok := extractBraceObject(raw)
	if !ok {
		return domain.QuestionDraft{}, fmt.Errorf("%w: no brace-delimited object found", domain.ErrGenerationExtraction)
	}
	var draft domain.QuestionDraft
	if err := json.Unmarshal([]byte(object), &draft); err != nil {
		return domain.QuestionDraft{}, fmt.Errorf("%w: %v", domain.ErrGenerationExtraction, err)
	}
	if err := domain.ValidateDraft(draft); err != nil {
		return domain.QuestionDraft{}, fmt.Errorf("%w: %v", domain.ErrGenerationExtraction, err)
	}
	return draft, nil
}

// extractBraceObject returns the first balanced brace-delimited object in s,
// tolerating surrounding prose. Braces inside JSON strings are ignored.
func extractBraceObject(s string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
