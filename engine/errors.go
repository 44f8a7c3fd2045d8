package engine

import "fmt"

// UnknownFieldError reports a caller-supplied field name that is not part of
// the record schema at all. The API layer turns this into a 400.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}

// MissingFieldError reports a field that the schema knows but a specific
// record lacks (or carries as null).
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("field %q missing from record", e.Field)
}

// InvalidFieldTypeError reports a present but non-numeric value where a
// numeric operation was requested.
type InvalidFieldTypeError struct {
	Field string
	Value any
}

func (e *InvalidFieldTypeError) Error() string {
	return fmt.Sprintf("field %q holds non-numeric value %v (%T)", e.Field, e.Value, e.Value)
}
