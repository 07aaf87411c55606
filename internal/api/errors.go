package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrEmptyResponse = errors.New("empty response body")
)

// maxErrorBody caps how much of an error response ends up in messages.
const maxErrorBody = 512

// RequestError is returned when the request could not be sent or the API
// answered with a non-2xx status. StatusCode is 0 for transport failures.
type RequestError struct {
	Path       string
	StatusCode int
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("request %s failed: %v", e.Path, e.Err)
	}

	msg := fmt.Sprintf("request %s failed with status %d", e.Path, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *RequestError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}

	switch e.StatusCode {
	case 401:
		return ErrUnauthorized
	case 404:
		return ErrNotFound
	}
	return nil
}

// DecodeError is returned when a response body does not have the shape of
// the requested records. Field is empty when the failure is not tied to one.
type DecodeError struct {
	Payload []byte
	Field   string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("failed to decode response body: field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("failed to decode response body: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}
