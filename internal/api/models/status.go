package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownStatus = errors.New("unknown status")

// Status is the provisioning state of an account or virtual organisation.
type Status string

const (
	StatusActive        Status = "active"
	StatusInactive      Status = "inactive"
	StatusModified      Status = "modified"
	StatusNew           Status = "new"
	StatusForceInactive Status = "forceinactive"
	StatusForceActive   Status = "forceactive"
)

var statuses = []Status{
	StatusActive,
	StatusInactive,
	StatusModified,
	StatusNew,
	StatusForceInactive,
	StatusForceActive,
}

func ParseStatus(s string) (Status, error) {
	for _, st := range statuses {
		if string(st) == s {
			return st, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func (s Status) IsValid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) MarshalJSON() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
	return json.Marshal(string(s))
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	st, err := ParseStatus(raw)
	if err != nil {
		return err
	}

	*s = st
	return nil
}
