package model

import (
	"fmt"
	"sort"
	"strings"
)

// MalformedDateError reports a certification date that cannot be parsed.
type MalformedDateError struct {
	Record string // Certification name.
	Field  string // "issued" or "expires".
	Value  string
	Err    error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("certification %q: malformed %s date %q", e.Record, e.Field, e.Value)
}

func (e *MalformedDateError) Unwrap() error { return e.Err }

// ChronologyError reports a certification that expires before it was issued.
type ChronologyError struct {
	Record  string
	Issued  string
	Expires string
}

func (e *ChronologyError) Error() string {
	return fmt.Sprintf("certification %q: expires %s before issued %s", e.Record, e.Expires, e.Issued)
}

// MissingFieldError reports a required dataset field that is empty.
type MissingFieldError struct {
	Record string
	Field  string
}

func (e *MissingFieldError) Error() string {
	if e.Record == "" {
		return fmt.Sprintf("certification: missing %s", e.Field)
	}
	return fmt.Sprintf("certification %q: missing %s", e.Record, e.Field)
}

// ValidationError carries per-field messages for rejected user input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// DeliveryError reports a contact submission the mail collaborator did not accept.
// Retryable is true when resubmitting the same message may succeed.
type DeliveryError struct {
	Err       error
	Retryable bool
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("contact delivery failed: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
