// Package validation checks untrusted JSON payloads before they reach the
// record store. Each validator returns either the insertable record or an
// Errors value listing every field that failed.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Payload is a decoded JSON object. Numbers are kept as json.Number so that
// integer checks see the literal the client sent.
type Payload map[string]any

// ErrNotObject is returned by Decode when the body is not a single JSON object.
var ErrNotObject = errors.New("request body must be a JSON object")

// Decode reads one JSON object from r.
func Decode(r io.Reader) (Payload, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrNotObject
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return Payload(obj), nil
}

// FieldError describes one invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the list of field problems found in one payload.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field has at least one error.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// checker accumulates field errors while reading a payload.
type checker struct {
	p    Payload
	errs Errors
}

func (c *checker) fail(field, format string, args ...any) {
	c.errs = append(c.errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (c *checker) err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}
