package query

import (
	"errors"
	"fmt"
	"net/url"
)

var (
	ErrMissingRequiredArgument = errors.New("missing required argument")
	ErrInvalidArgument         = errors.New("invalid argument")
)

type Resource int

const (
	ResourceAccount Resource = iota + 1
	ResourceVirtualOrganisation
)

func (r Resource) String() string {
	switch r {
	case ResourceAccount:
		return "account"
	case ResourceVirtualOrganisation:
		return "vo"
	default:
		return fmt.Sprintf("resource(%d)", int(r))
	}
}

// Kind names one of the access patterns the account page exposes.
type Kind int

const (
	KindUnknown Kind = iota
	FetchAllAccounts
	FetchAccountsModifiedSince
	FetchAccountByVscID
	FetchAccountByInstituteLogin
	FetchAllVirtualOrganisations
	FetchVirtualOrganisationByVscID
)

var kindNames = map[Kind]string{
	FetchAllAccounts:                "FetchAllAccounts",
	FetchAccountsModifiedSince:      "FetchAccountsModifiedSince",
	FetchAccountByVscID:             "FetchAccountByVscID",
	FetchAccountByInstituteLogin:    "FetchAccountByInstituteLogin",
	FetchAllVirtualOrganisations:    "FetchAllVOs",
	FetchVirtualOrganisationByVscID: "FetchVOByVscID",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Intent is a single resolved query. Only the fields its Kind uses are set.
type Intent struct {
	Kind          Kind
	VscID         string
	Institute     string
	Login         string
	ModifiedSince string
}

func AllAccounts() Intent {
	return Intent{Kind: FetchAllAccounts}
}

func AccountsModifiedSince(ts string) Intent {
	return Intent{Kind: FetchAccountsModifiedSince, ModifiedSince: ts}
}

func AccountByVscID(vscID string) Intent {
	return Intent{Kind: FetchAccountByVscID, VscID: vscID}
}

func AccountByInstituteLogin(institute, login string) Intent {
	return Intent{Kind: FetchAccountByInstituteLogin, Institute: institute, Login: login}
}

func AllVirtualOrganisations() Intent {
	return Intent{Kind: FetchAllVirtualOrganisations}
}

func VirtualOrganisationByVscID(vscID string) Intent {
	return Intent{Kind: FetchVirtualOrganisationByVscID, VscID: vscID}
}

func (i Intent) Resource() Resource {
	switch i.Kind {
	case FetchAllVirtualOrganisations, FetchVirtualOrganisationByVscID:
		return ResourceVirtualOrganisation
	case KindUnknown:
		return 0
	default:
		return ResourceAccount
	}
}

// IsList reports whether the response is a collection rather than a
// single record.
func (i Intent) IsList() bool {
	switch i.Kind {
	case FetchAllAccounts, FetchAccountsModifiedSince, FetchAllVirtualOrganisations:
		return true
	default:
		return false
	}
}

// Path renders the resource path relative to the API base URL. Every
// user-supplied segment is escaped with url.PathEscape, which leaves
// unreserved characters untouched.
func (i Intent) Path() (string, error) {
	switch i.Kind {
	case FetchAllAccounts:
		return "api/account/", nil
	case FetchAccountsModifiedSince:
		ts, err := segment("modified timestamp", i.ModifiedSince)
		if err != nil {
			return "", err
		}
		return "api/account/modified/" + ts, nil
	case FetchAccountByVscID:
		id, err := segment("vsc id", i.VscID)
		if err != nil {
			return "", err
		}
		return "api/account/" + id + "/", nil
	case FetchAccountByInstituteLogin:
		inst, err := segment("institute", i.Institute)
		if err != nil {
			return "", err
		}
		login, err := segment("institute login", i.Login)
		if err != nil {
			return "", err
		}
		return "api/account/institute/" + inst + "/id/" + login, nil
	case FetchAllVirtualOrganisations:
		return "api/vo/", nil
	case FetchVirtualOrganisationByVscID:
		id, err := segment("vsc id", i.VscID)
		if err != nil {
			return "", err
		}
		return "api/vo/" + id, nil
	default:
		return "", fmt.Errorf("%w: no path for intent %v", ErrInvalidArgument, i.Kind)
	}
}

// segment escapes one user supplied path element. Dot segments are refused
// since PathEscape leaves them alone and they would be resolved away.
func segment(name, value string) (string, error) {
	switch value {
	case "":
		return "", fmt.Errorf("%w: empty %s", ErrMissingRequiredArgument, name)
	case ".", "..":
		return "", fmt.Errorf("%w: %s %q", ErrInvalidArgument, name, value)
	}
	return url.PathEscape(value), nil
}
