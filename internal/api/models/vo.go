package models

import "encoding/json"

// VirtualOrganisation is a group of accounts sharing storage and a
// fairshare weight. Members and Moderators hold VSC ids.
type VirtualOrganisation struct {
	VscID       string    `json:"vsc_id"`
	Status      Status    `json:"status"`
	VscIDNumber uint64    `json:"vsc_id_number"`
	Institute   Institute `json:"institute"`
	Fairshare   uint32    `json:"fairshare"`
	DataPath    string    `json:"data_path"`
	ScratchPath string    `json:"scratch_path"`
	Description string    `json:"description"`
	Members     []string  `json:"members"`
	Moderators  []string  `json:"moderators"`
}

var voRequired = []string{
	"vsc_id",
	"status",
	"vsc_id_number",
	"institute",
	"fairshare",
	"data_path",
	"scratch_path",
	"description",
}

func (v *VirtualOrganisation) UnmarshalJSON(data []byte) error {
	raw, err := rawFields("vo", data, voRequired, "members", "moderators")
	if err != nil {
		return err
	}

	var status Status
	if err := checkField("vo", raw, "status", &status); err != nil {
		return err
	}

	type vo VirtualOrganisation
	var out vo
	if err := json.Unmarshal(data, &out); err != nil {
		return fieldError("vo", err)
	}

	*v = VirtualOrganisation(out)
	return nil
}

type VirtualOrganisations []VirtualOrganisation
