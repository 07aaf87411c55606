package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vscentrum/accountpagectl/internal/api/models"
	"github.com/vscentrum/accountpagectl/internal/query"
)

// Decode parses a response body into the shape the intent asks for:
// models.Accounts, *models.Account, models.VirtualOrganisations or
// *models.VirtualOrganisation.
func Decode(intent query.Intent, body []byte) (interface{}, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, &DecodeError{Payload: body, Err: ErrEmptyResponse}
	}

	switch intent.Kind {
	case query.FetchAllAccounts, query.FetchAccountsModifiedSince:
		accounts, err := decodeInto[models.Accounts](body)
		if err != nil {
			return nil, err
		}
		return accounts, nil
	case query.FetchAccountByVscID, query.FetchAccountByInstituteLogin:
		account, err := decodeInto[models.Account](body)
		if err != nil {
			return nil, err
		}
		return &account, nil
	case query.FetchAllVirtualOrganisations:
		vos, err := decodeInto[models.VirtualOrganisations](body)
		if err != nil {
			return nil, err
		}
		return vos, nil
	case query.FetchVirtualOrganisationByVscID:
		vo, err := decodeInto[models.VirtualOrganisation](body)
		if err != nil {
			return nil, err
		}
		return &vo, nil
	default:
		return nil, fmt.Errorf("%w: cannot decode response for intent %v", query.ErrInvalidArgument, intent.Kind)
	}
}

func decodeInto[T any](body []byte) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return v, newDecodeError(body, err)
	}
	return v, nil
}

func newDecodeError(body []byte, err error) *DecodeError {
	de := &DecodeError{Payload: body, Err: err}

	var fe *models.FieldError
	var te *json.UnmarshalTypeError
	switch {
	case errors.As(err, &fe):
		de.Field = fe.Field
	case errors.As(err, &te):
		de.Field = te.Field
	}

	return de
}
