package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/vscentrum/accountpagectl/internal/api"
	"github.com/vscentrum/accountpagectl/internal/config"
	internalhttp "github.com/vscentrum/accountpagectl/internal/http"
	"github.com/vscentrum/accountpagectl/internal/query"
	"go.uber.org/zap"
)

const (
	CommandAccount = "account"
	CommandVO      = "vo"
)

var ErrUnknownCommand = errors.New("unknown command")

// Command is one parsed invocation: the subcommand and its filters.
type Command struct {
	Name   string
	Filter query.Filter
}

type Option func(*Dispatcher)

// WithTransport replaces the HTTP client built from the configuration.
func WithTransport(transport api.Transport) Option {
	return func(d *Dispatcher) {
		d.transport = transport
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

func WithFormat(format Format) Option {
	return func(d *Dispatcher) {
		d.format = format
	}
}

func WithColor(color bool) Option {
	return func(d *Dispatcher) {
		d.color = color
	}
}

func WithVersion(version string) Option {
	return func(d *Dispatcher) {
		d.version = version
	}
}

type Dispatcher struct {
	cfg       config.Config
	transport api.Transport
	api       api.API
	logger    *zap.Logger
	format    Format
	color     bool
	version   string
}

func New(cfg config.Config, opts ...Option) (*Dispatcher, error) {
	d := &Dispatcher{
		cfg:    cfg,
		logger: zap.NewNop(),
		format: FormatJSON,
	}

	for _, opt := range opts {
		opt(d)
	}

	if _, err := ParseFormat(string(d.format)); err != nil {
		return nil, err
	}

	if d.transport == nil {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		d.transport = internalhttp.NewClient(cfg.APIURL, cfg.Token,
			internalhttp.WithTimeout(cfg.Timeout),
			internalhttp.WithVersion(d.version),
			internalhttp.WithLogger(d.logger),
		)
	}

	d.api = api.NewAPI(d.transport, api.WithLogger(d.logger))

	return d, nil
}

// Run executes exactly one flow, account or vo, and returns the rendered
// result. Usage errors are returned before any request is sent.
func (d *Dispatcher) Run(ctx context.Context, cmd Command) (string, error) {
	intent, err := Resolve(cmd)
	if err != nil {
		return "", err
	}

	if ignored := cmd.Filter.Ignored(intent); len(ignored) > 0 {
		d.logger.Debug("filters ignored by precedence",
			zap.String("command", cmd.Name),
			zap.Stringer("intent", intent.Kind),
			zap.Strings("ignored", ignored),
		)
	}

	result, err := d.fetch(ctx, intent)
	if err != nil {
		return "", err
	}

	return Render(result, d.format, d.color)
}

func (d *Dispatcher) fetch(ctx context.Context, intent query.Intent) (interface{}, error) {
	switch intent.Kind {
	case query.FetchAllAccounts:
		return d.api.GetAccounts(ctx)
	case query.FetchAccountsModifiedSince:
		since, err := query.ParseTimestamp(intent.ModifiedSince)
		if err != nil {
			return nil, err
		}
		return d.api.GetAccountsModifiedSince(ctx, since)
	case query.FetchAccountByVscID:
		return d.api.GetAccount(ctx, intent.VscID)
	case query.FetchAccountByInstituteLogin:
		return d.api.GetAccountByInstituteLogin(ctx, intent.Institute, intent.Login)
	case query.FetchAllVirtualOrganisations:
		return d.api.GetVirtualOrganisations(ctx)
	case query.FetchVirtualOrganisationByVscID:
		return d.api.GetVirtualOrganisation(ctx, intent.VscID)
	default:
		return d.api.Fetch(ctx, intent)
	}
}

// Resolve checks a command, including the path it maps to, without
// touching the network.
func Resolve(cmd Command) (query.Intent, error) {
	resource, err := resourceFor(cmd.Name)
	if err != nil {
		return query.Intent{}, err
	}

	intent, err := query.Resolve(resource, cmd.Filter)
	if err != nil {
		return query.Intent{}, err
	}

	if _, err := intent.Path(); err != nil {
		return query.Intent{}, err
	}

	return intent, nil
}

func resourceFor(name string) (query.Resource, error) {
	switch name {
	case CommandAccount:
		return query.ResourceAccount, nil
	case CommandVO:
		return query.ResourceVirtualOrganisation, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
}
