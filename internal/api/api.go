package api

import (
	"context"
	"fmt"
	"time"

	"github.com/vscentrum/accountpagectl/internal/api/models"
	"github.com/vscentrum/accountpagectl/internal/query"
	"go.uber.org/zap"
)

// Transport performs a GET for a path relative to the API base URL and
// hands back the status code and the raw body.
type Transport interface {
	Get(ctx context.Context, path string) (int, []byte, error)
}

type API interface {
	GetAccounts(ctx context.Context) (models.Accounts, error)
	GetAccountsModifiedSince(ctx context.Context, since time.Time) (models.Accounts, error)
	GetAccount(ctx context.Context, vscID string) (*models.Account, error)
	GetAccountByInstituteLogin(ctx context.Context, institute, login string) (*models.Account, error)
	GetVirtualOrganisations(ctx context.Context) (models.VirtualOrganisations, error)
	GetVirtualOrganisation(ctx context.Context, vscID string) (*models.VirtualOrganisation, error)
	Fetch(ctx context.Context, intent query.Intent) (interface{}, error)
}

var _ API = (*AccountPageAPI)(nil)

type APIOption func(*AccountPageAPI)

func WithLogger(logger *zap.Logger) APIOption {
	return func(a *AccountPageAPI) {
		a.logger = logger
	}
}

type AccountPageAPI struct {
	transport Transport
	logger    *zap.Logger
}

func NewAPI(transport Transport, opts ...APIOption) *AccountPageAPI {
	api := AccountPageAPI{
		transport: transport,
		logger:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&api)
	}

	return &api
}

// Request issues the GET and returns the body of a 2xx response.
func (a *AccountPageAPI) Request(ctx context.Context, path string) ([]byte, error) {
	status, body, err := a.transport.Get(ctx, path)
	if err != nil {
		return nil, &RequestError{Path: path, Err: err}
	}

	a.logger.Debug("received response", zap.String("path", path), zap.Int("status", status), zap.Int("bytes", len(body)))

	if status < 200 || status > 299 {
		return nil, &RequestError{Path: path, StatusCode: status, Body: truncate(body)}
	}

	return body, nil
}

// Fetch resolves the intent to its path, requests it and decodes the body.
// Nothing is decoded when the request fails.
func (a *AccountPageAPI) Fetch(ctx context.Context, intent query.Intent) (interface{}, error) {
	path, err := intent.Path()
	if err != nil {
		return nil, err
	}

	a.logger.Debug("fetching", zap.Stringer("intent", intent.Kind), zap.String("path", path))

	body, err := a.Request(ctx, path)
	if err != nil {
		return nil, err
	}

	return Decode(intent, body)
}

func (a *AccountPageAPI) GetAccounts(ctx context.Context) (models.Accounts, error) {
	return fetchAs[models.Accounts](ctx, a, query.AllAccounts())
}

func (a *AccountPageAPI) GetAccountsModifiedSince(ctx context.Context, since time.Time) (models.Accounts, error) {
	return fetchAs[models.Accounts](ctx, a, query.AccountsModifiedSince(query.FormatTimestamp(since)))
}

func (a *AccountPageAPI) GetAccount(ctx context.Context, vscID string) (*models.Account, error) {
	return fetchAs[*models.Account](ctx, a, query.AccountByVscID(vscID))
}

func (a *AccountPageAPI) GetAccountByInstituteLogin(ctx context.Context, institute, login string) (*models.Account, error) {
	return fetchAs[*models.Account](ctx, a, query.AccountByInstituteLogin(institute, login))
}

func (a *AccountPageAPI) GetVirtualOrganisations(ctx context.Context) (models.VirtualOrganisations, error) {
	return fetchAs[models.VirtualOrganisations](ctx, a, query.AllVirtualOrganisations())
}

func (a *AccountPageAPI) GetVirtualOrganisation(ctx context.Context, vscID string) (*models.VirtualOrganisation, error) {
	return fetchAs[*models.VirtualOrganisation](ctx, a, query.VirtualOrganisationByVscID(vscID))
}

func fetchAs[T any](ctx context.Context, a *AccountPageAPI, intent query.Intent) (T, error) {
	var zero T

	v, err := a.Fetch(ctx, intent)
	if err != nil {
		return zero, err
	}

	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected %T for intent %v", v, intent.Kind)
	}

	return out, nil
}
