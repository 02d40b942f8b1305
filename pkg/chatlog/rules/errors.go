package rules

import "fmt"

// ValidationError represents a schema-level validation error.
// These errors occur when a rule file violates structural requirements
// (e.g., missing required fields, invalid version number).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// RuleError represents an error specific to an individual rule.
// These errors occur when a single rule has issues (e.g., invalid regex,
// duplicate ID, missing fields).
type RuleError struct {
	Index   int    // 0-based index of the rule in the file
	ID      string // Rule ID (may be empty if ID field is missing)
	Field   string
	Message string
	Cause   error // Underlying error (e.g., regex compile error)
}

func (e *RuleError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("rule %q: %s: %s", e.ID, e.Field, e.Message)
	}
	return fmt.Sprintf("rule[%d]: %s: %s", e.Index, e.Field, e.Message)
}

// Unwrap returns the underlying cause of the error.
// This enables errors.Is() and errors.As() to work with RuleError.
func (e *RuleError) Unwrap() error {
	return e.Cause
}
