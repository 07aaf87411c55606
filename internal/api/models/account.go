package models

import (
	"encoding/json"
	"time"
)

type Institute struct {
	Name string `json:"name"`
}

func (i *Institute) UnmarshalJSON(data []byte) error {
	if _, err := rawFields("institute", data, []string{"name"}); err != nil {
		return err
	}

	type institute Institute
	var out institute
	if err := json.Unmarshal(data, &out); err != nil {
		return fieldError("institute", err)
	}

	*i = Institute(out)
	return nil
}

type Person struct {
	Gecos          string    `json:"gecos"`
	Institute      Institute `json:"institute"`
	InstituteLogin string    `json:"institute_login"`
	Realeppn       string    `json:"realeppn"`
}

var personRequired = []string{"gecos", "institute", "institute_login", "realeppn"}

func (p *Person) UnmarshalJSON(data []byte) error {
	if _, err := rawFields("person", data, personRequired); err != nil {
		return err
	}

	type person Person
	var out person
	if err := json.Unmarshal(data, &out); err != nil {
		return fieldError("person", err)
	}

	*p = Person(out)
	return nil
}

// Account is a VSC account as served by the account page. ExpiryDate and
// GraceUntil are nil unless the API sets them.
type Account struct {
	VscID            string    `json:"vsc_id"`
	Status           Status    `json:"status"`
	IsActive         bool      `json:"isactive"`
	ForceActive      bool      `json:"force_active"`
	ExpiryDate       *Date     `json:"expiry_date"`
	GraceUntil       *Date     `json:"grace_until"`
	VscIDNumber      uint64    `json:"vsc_id_number"`
	HomeDirectory    string    `json:"home_directory"`
	DataDirectory    string    `json:"data_directory"`
	ScratchDirectory string    `json:"scratch_directory"`
	LoginShell       string    `json:"login_shell"`
	Broken           bool      `json:"broken"`
	Email            string    `json:"email"`
	ResearchField    []string  `json:"research_field"`
	CreateTimestamp  time.Time `json:"create_timestamp"`
	Person           Person    `json:"person"`
	HomeOnScratch    bool      `json:"home_on_scratch"`
}

var accountRequired = []string{
	"vsc_id",
	"status",
	"isactive",
	"force_active",
	"vsc_id_number",
	"home_directory",
	"data_directory",
	"scratch_directory",
	"login_shell",
	"broken",
	"email",
	"create_timestamp",
	"person",
	"home_on_scratch",
}

func (a *Account) UnmarshalJSON(data []byte) error {
	raw, err := rawFields("account", data, accountRequired, "research_field")
	if err != nil {
		return err
	}

	var (
		status Status
		date   Date
		ts     time.Time
	)
	if err := checkField("account", raw, "status", &status); err != nil {
		return err
	}
	if err := checkField("account", raw, "expiry_date", &date); err != nil {
		return err
	}
	if err := checkField("account", raw, "grace_until", &date); err != nil {
		return err
	}
	if err := checkField("account", raw, "create_timestamp", &ts); err != nil {
		return err
	}

	type account Account
	var out account
	if err := json.Unmarshal(data, &out); err != nil {
		return fieldError("account", err)
	}

	*a = Account(out)
	return nil
}

type Accounts []Account
