package domain

import "strings"

// ValidateDraft checks the question shape at the boundary: non-empty source
// text, exactly four distinct non-empty options, and a correct index that
// points into them. It returns a *ValidationError naming the first offending
// field, or nil for a well-formed draft.
func ValidateDraft(d QuestionDraft) error {
	if strings.TrimSpace(d.SourceText) == "" {
		return &ValidationError{Field: "chinese", Reason: "must be a non-empty string"}
	}
	if len(d.Options) != OptionCount {
		return &ValidationError{Field: "options", Reason: "must contain exactly 4 entries"}
	}
	seen := make(map[string]struct{}, OptionCount)
	for _, opt := range d.Options {
		if strings.TrimSpace(opt) == "" {
			return &ValidationError{Field: "options", Reason: "must not contain empty entries"}
		}
		if _, dup := seen[opt]; dup {
			return &ValidationError{Field: "options", Reason: "must be distinct"}
		}
		seen[opt] = struct{}{}
	}
	if d.CorrectIndex < 0 || d.CorrectIndex >= OptionCount {
		return &ValidationError{Field: "correctIndex", Reason: "must be between 0 and 3"}
	}
	return nil
}
