package query

import (
	"fmt"
	"time"
)

// TimestampLayout is the YYYYMMDDHHMM form the modified endpoint takes.
const TimestampLayout = "200601021504"

// Filter holds the optional user inputs. Empty strings count as absent.
type Filter struct {
	All            bool
	Institute      string
	InstituteLogin string
	ModifiedSince  string
	VscID          string
}

// Resolve picks the single intent for the filter. The first matching rule
// wins: all, institute with login, modified since, vsc id. The vo resource
// only knows all and vsc id.
func Resolve(resource Resource, f Filter) (Intent, error) {
	switch resource {
	case ResourceAccount:
		return ResolveAccount(f)
	case ResourceVirtualOrganisation:
		return ResolveVirtualOrganisation(f)
	default:
		return Intent{}, fmt.Errorf("%w: unknown resource %v", ErrInvalidArgument, resource)
	}
}

func ResolveAccount(f Filter) (Intent, error) {
	if f.All {
		return AllAccounts(), nil
	}

	if f.Institute != "" && f.InstituteLogin != "" {
		return AccountByInstituteLogin(f.Institute, f.InstituteLogin), nil
	}

	if f.ModifiedSince != "" {
		if _, err := ParseTimestamp(f.ModifiedSince); err != nil {
			return Intent{}, err
		}
		return AccountsModifiedSince(f.ModifiedSince), nil
	}

	if f.VscID != "" {
		return AccountByVscID(f.VscID), nil
	}

	return Intent{}, fmt.Errorf("%w: a vsc id is needed when no other account filter is given", ErrMissingRequiredArgument)
}

func ResolveVirtualOrganisation(f Filter) (Intent, error) {
	if f.All {
		return AllVirtualOrganisations(), nil
	}

	if f.VscID != "" {
		return VirtualOrganisationByVscID(f.VscID), nil
	}

	return Intent{}, fmt.Errorf("%w: a vsc id is needed unless all virtual organisations are requested", ErrMissingRequiredArgument)
}

// Ignored lists the inputs that were given but did not take part in the
// resolved intent.
func (f Filter) Ignored(intent Intent) []string {
	var ignored []string
	if f.All && intent.Kind != FetchAllAccounts && intent.Kind != FetchAllVirtualOrganisations {
		ignored = append(ignored, "all")
	}
	if f.Institute != "" && intent.Kind != FetchAccountByInstituteLogin {
		ignored = append(ignored, "institute")
	}
	if f.InstituteLogin != "" && intent.Kind != FetchAccountByInstituteLogin {
		ignored = append(ignored, "login")
	}
	if f.ModifiedSince != "" && intent.Kind != FetchAccountsModifiedSince {
		ignored = append(ignored, "modified")
	}
	if f.VscID != "" && intent.Kind != FetchAccountByVscID && intent.Kind != FetchVirtualOrganisationByVscID {
		ignored = append(ignored, "vscid")
	}
	return ignored
}

func ParseTimestamp(s string) (time.Time, error) {
	if len(s) != len(TimestampLayout) {
		return time.Time{}, fmt.Errorf("%w: modified timestamp %q is not YYYYMMDDHHMM", ErrInvalidArgument, s)
	}

	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: modified timestamp %q is not YYYYMMDDHHMM", ErrInvalidArgument, s)
	}

	return t, nil
}

func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
