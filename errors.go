package polestock

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors reported by the engine. Callers test them with errors.Is.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrExceeded   = errors.New("exceeds the outstanding imbalance")
)

// FieldError is a validation failure attached to one input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every invalid field of a request, in field order.
// A request that fails validation is never partially applied.
type ValidationError struct {
	Fields []FieldError
}

// set records a message for field, replacing a previous message for the same field.
func (e *ValidationError) set(field, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	for i := range e.Fields {
		if e.Fields[i].Field == field {
			e.Fields[i].Message = msg
			return
		}
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

// Field returns the message recorded for field, or "" if the field is valid.
func (e *ValidationError) Field(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(msgs, "; "))
}

// Is makes any *ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// orNil returns e as an error if it holds any failure, nil otherwise.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
