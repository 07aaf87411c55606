package dispatch

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/TylerBrock/colorjson"
	"github.com/jedib0t/go-pretty/table"
	"github.com/vscentrum/accountpagectl/internal/api/models"
	"github.com/vscentrum/accountpagectl/internal/query"
)

type Format string

const (
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatTable:
		return FormatTable, nil
	default:
		return "", fmt.Errorf("%w: unknown output format %q", query.ErrInvalidArgument, s)
	}
}

// Render turns a decoded result into text. JSON output carries every model
// field; the table is a summary.
func Render(v interface{}, format Format, color bool) (string, error) {
	switch format {
	case FormatTable:
		return renderTable(v)
	case FormatJSON, "":
		return renderJSON(v, color)
	default:
		return "", fmt.Errorf("%w: unknown output format %q", query.ErrInvalidArgument, format)
	}
}

func renderJSON(v interface{}, color bool) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}

	if !color {
		return string(out), nil
	}

	var obj interface{}
	if err := json.Unmarshal(out, &obj); err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}

	f := colorjson.NewFormatter()
	f.Indent = 2
	colored, err := f.Marshal(obj)
	if err != nil {
		return "", fmt.Errorf("failed to colorize result: %w", err)
	}

	return string(colored), nil
}

func renderTable(v interface{}) (string, error) {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)

	switch r := v.(type) {
	case models.Accounts:
		appendAccounts(t, r)
	case *models.Account:
		appendAccounts(t, models.Accounts{*r})
	case models.VirtualOrganisations:
		appendVirtualOrganisations(t, r)
	case *models.VirtualOrganisation:
		appendVirtualOrganisations(t, models.VirtualOrganisations{*r})
	default:
		return "", fmt.Errorf("cannot render %T as a table", v)
	}

	return t.Render(), nil
}

func appendAccounts(t table.Writer, accounts models.Accounts) {
	t.AppendHeader(table.Row{"VSC ID", "Status", "Institute", "Login", "Email", "Expiry"})
	for _, a := range accounts {
		t.AppendRow(table.Row{
			a.VscID,
			a.Status,
			a.Person.Institute.Name,
			a.Person.InstituteLogin,
			a.Email,
			dateOrDash(a.ExpiryDate),
		})
	}
}

func appendVirtualOrganisations(t table.Writer, vos models.VirtualOrganisations) {
	t.AppendHeader(table.Row{"VSC ID", "Status", "Institute", "Fairshare", "Members", "Moderators", "Description"})
	for _, vo := range vos {
		t.AppendRow(table.Row{
			vo.VscID,
			vo.Status,
			vo.Institute.Name,
			strconv.FormatUint(uint64(vo.Fairshare), 10),
			len(vo.Members),
			len(vo.Moderators),
			vo.Description,
		})
	}
}

func dateOrDash(d *models.Date) string {
	if d == nil {
		return "-"
	}
	return d.String()
}
