package record

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
)

// Errors maps a field name to its localized messages.
// It's based on url.Values to leverage built-in string slice handling.
type Errors url.Values

// NewErrors creates an empty error set.
func NewErrors() Errors {
	return make(Errors)
}

// Error implements the error interface. Fields are listed in sorted order.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a message for field.
func (e Errors) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns every message recorded for field.
func (e Errors) Get(field string) []string {
	return e[field]
}

// First returns the first message for field, or "".
func (e Errors) First(field string) string {
	return url.Values(e).Get(field)
}

// All returns a copy of the messages keyed by field.
func (e Errors) All() map[string][]string {
	out := make(map[string][]string, len(e))
	for field, messages := range e {
		out[field] = slices.Clone(messages)
	}
	return out
}

// Fields returns the sorted names of fields with errors.
func (e Errors) Fields() []string {
	return slices.Sorted(maps.Keys(e))
}

// Has checks if a field has any errors.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty returns true if there are no validation errors.
func (e Errors) IsEmpty() bool {
	return len(e) == 0
}
