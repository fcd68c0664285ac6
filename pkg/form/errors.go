package form

import (
	"fmt"
	"sort"
	"strings"
)

// Errors maps a field identifier to its single active error message.
// Absence of a key means the field is currently valid or untouched; a field
// never carries more than one message at a time.
type Errors map[string]string

// Error implements the error interface with a stable, readable summary.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Set records message as the field's active error, replacing any previous one.
func (e Errors) Set(field, message string) {
	e[field] = message
}

// Clear removes the field's active error, if any.
func (e Errors) Clear(field string) {
	delete(e, field)
}

// Has reports whether the field currently has an active error.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the field's active error message, or "" when the field is valid.
func (e Errors) Get(field string) string {
	return e[field]
}

// IsEmpty reports whether no field currently has an error.
func (e Errors) IsEmpty() bool {
	return len(e) == 0
}
