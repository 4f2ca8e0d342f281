package compose

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldViolation names one field that failed validation and why.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated field so callers can surface all of
// them at once instead of one per round trip. It never reaches storage: a
// draft failing validation is simply not persisted.
type ValidationError struct {
	Fields []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewError builds a single-field ValidationError; other packages use it for
// request-level checks that map to the same 400 handling.
func NewError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldViolation{{Field: field, Message: message}}}
}

var (
	// Formatted Brazilian tax id: XXX.XXX.XXX-XX. Unpunctuated digits are
	// rejected so stored CPFs always look the same.
	cpfPattern      = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	areaCodePattern = regexp.MustCompile(`^\d{2}$`)
)

// ValidCPF reports whether cpf matches the formatted pattern. Emptiness is
// the caller's decision: the field is optional but format-checked when set.
func ValidCPF(cpf string) bool { return cpfPattern.MatchString(cpf) }

// ValidAreaCode reports whether code is exactly two digits.
func ValidAreaCode(code string) bool { return areaCodePattern.MatchString(code) }
