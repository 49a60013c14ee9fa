package config

import (
	"errors"
	"fmt"
	"strings"
)

// Defining possible validation failures. Resolution joins every field
// violation it finds, so callers should test categories with errors.Is
// instead of comparing directly.
var (
	ErrMissingRequiredField    = errors.New("missing required field")
	ErrInvalidEnumValue        = errors.New("invalid enum value")
	ErrOutOfRangeValue         = errors.New("out of range value")
	ErrConditionalFieldMissing = errors.New("conditionally required field missing")
)

// FieldError ties a validation failure to the config key that caused it.
type FieldError struct {
	Field string // config key, nested keys use dots e.g. "cutoff.frip"
	Err   error  // one of the categories above
	Msg   string // additional context for the error
}

func (e *FieldError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Field, e.Err, e.Msg)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func missingField(field string) error {
	return &FieldError{Field: field, Err: ErrMissingRequiredField}
}

func invalidEnum(field string, got string, allowed []string) error {
	return &FieldError{
		Field: field,
		Err:   ErrInvalidEnumValue,
		Msg:   fmt.Sprintf("%q is not one of [%s]", got, strings.Join(allowed, ", ")),
	}
}

func outOfRange(field string, got any, want string) error {
	return &FieldError{
		Field: field,
		Err:   ErrOutOfRangeValue,
		Msg:   fmt.Sprintf("got %v, %s", got, want),
	}
}

func conditionalMissing(field string, cond string) error {
	return &FieldError{
		Field: field,
		Err:   ErrConditionalFieldMissing,
		Msg:   "required when " + cond,
	}
}
