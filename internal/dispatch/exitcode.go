package dispatch

import (
	"errors"

	"github.com/vscentrum/accountpagectl/internal/api"
	"github.com/vscentrum/accountpagectl/internal/config"
	"github.com/vscentrum/accountpagectl/internal/query"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
	ExitRequest = 3
	ExitDecode  = 4
	ExitConfig  = 5
)

// ExitCode maps an error returned by Run, or by the setup before it, to the
// process exit status.
func ExitCode(err error) int {
	var (
		requestErr *api.RequestError
		decodeErr  *api.DecodeError
	)

	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, query.ErrMissingRequiredArgument),
		errors.Is(err, query.ErrInvalidArgument),
		errors.Is(err, ErrUnknownCommand):
		return ExitUsage
	case errors.As(err, &requestErr):
		return ExitRequest
	case errors.As(err, &decodeErr):
		return ExitDecode
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitConfig
	default:
		return ExitFailure
	}
}
