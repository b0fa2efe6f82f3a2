package domain

import (
	"sort"
	"strings"
)

// ValidationError carries per-field messages for a rejected form. Message is
// a banner level summary and may be empty.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return "validation: " + e.Message
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation: " + strings.Join(parts, "; ")
}

// NewValidationError returns nil when fields is empty.
func NewValidationError(message string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Message: message, Fields: fields}
}
