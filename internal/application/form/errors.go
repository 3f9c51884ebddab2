package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/acme/backend/internal/domain/shared"
)

// FieldError is a single failed rule on a bound field. Code is a message key.
type FieldError struct {
	Field string `json:"field"`
	Code  string `json:"code"`
}

// Errors accumulates field errors during the validate stage, preserving the
// order in which fields first failed.
type Errors struct {
	byField map[string][]string
	order   []string
}

// NewErrors creates an empty error buffer
func NewErrors() *Errors {
	return &Errors{byField: make(map[string][]string)}
}

// State records key against field unless cond holds
func (e *Errors) State(cond bool, field, key string) {
	if !cond {
		e.Add(field, key)
	}
}

// Add records key against field
func (e *Errors) Add(field, key string) {
	if _, seen := e.byField[field]; !seen {
		e.order = append(e.order, field)
	}
	e.byField[field] = append(e.byField[field], key)
}

// HasErrors reports whether field already failed a rule
func (e *Errors) HasErrors(field string) bool {
	return len(e.byField[field]) > 0
}

// Empty reports whether no rule failed
func (e *Errors) Empty() bool {
	return len(e.order) == 0
}

// List flattens the buffer in insertion order
func (e *Errors) List() []FieldError {
	out := make([]FieldError, 0, len(e.order))
	for _, field := range e.order {
		for _, code := range e.byField[field] {
			out = append(out, FieldError{Field: field, Code: code})
		}
	}
	return out
}

// Err returns nil when empty, otherwise a *ValidationError
func (e *Errors) Err() error {
	if e.Empty() {
		return nil
	}
	return &ValidationError{Fields: e.List()}
}

// ValidationError is returned when the validate stage rejects the bound input
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	parts := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		parts[i] = f.Field + ": " + f.Code
	}
	return fmt.Sprintf("validation failed (%s)", strings.Join(parts, ", "))
}

// Has reports whether the error carries code on field
func (v *ValidationError) Has(field, code string) bool {
	for _, f := range v.Fields {
		if f.Field == field && f.Code == code {
			return true
		}
	}
	return false
}

// OnDuplicate reports a store-level uniqueness failure as a validation error on
// field, so a code taken between validate and save reads like any other duplicate
func OnDuplicate(err error, field, key string) error {
	if !errors.Is(err, shared.ErrAlreadyExists) {
		return err
	}
	errs := NewErrors()
	errs.Add(field, key)
	return errs.Err()
}
