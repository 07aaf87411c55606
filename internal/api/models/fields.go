package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMissingField = errors.New("missing required field")

// FieldError reports a record field that is absent or holds a value of the
// wrong shape.
type FieldError struct {
	Record string
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Record, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// rawFields splits an object into its members and fails on the first
// required member that is missing or null. Members named in lists must be
// present but may be null, which decodes to a nil slice.
func rawFields(record string, data []byte, required []string, lists ...string) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	for _, field := range required {
		value, ok := raw[field]
		if !ok || string(value) == "null" {
			return nil, &FieldError{Record: record, Field: field, Err: ErrMissingField}
		}
	}

	for _, field := range lists {
		if _, ok := raw[field]; !ok {
			return nil, &FieldError{Record: record, Field: field, Err: ErrMissingField}
		}
	}

	return raw, nil
}

// checkField decodes a present, non-null member on its own so a failure can
// name the field. Custom unmarshalers (Status, Date) do not report one.
func checkField(record string, raw map[string]json.RawMessage, field string, target interface{}) error {
	value, ok := raw[field]
	if !ok || string(value) == "null" {
		return nil
	}

	if err := json.Unmarshal(value, target); err != nil {
		return &FieldError{Record: record, Field: field, Err: err}
	}

	return nil
}

// fieldError attaches the record and field name to a type mismatch.
func fieldError(record string, err error) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		return err
	}

	var te *json.UnmarshalTypeError
	if errors.As(err, &te) && te.Field != "" {
		return &FieldError{Record: record, Field: te.Field, Err: err}
	}

	return err
}
