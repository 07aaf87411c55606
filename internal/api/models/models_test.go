package models_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vscentrum/accountpagectl/internal/api/factories"
	"github.com/vscentrum/accountpagectl/internal/api/models"
)

const accountJSON = `{
	"vsc_id": "vsc40075",
	"status": "active",
	"isactive": true,
	"force_active": false,
	"expiry_date": null,
	"grace_until": "2020-01-31",
	"vsc_id_number": 2540075,
	"home_directory": "/user/home/gent/vsc400/vsc40075",
	"data_directory": "/user/data/gent/vsc400/vsc40075",
	"scratch_directory": "/user/scratch/gent/vsc400/vsc40075",
	"login_shell": "/bin/bash",
	"broken": false,
	"email": "jdoe@ugent.be",
	"research_field": ["Physics", "nuclear physics"],
	"create_timestamp": "2019-03-04T12:30:00+01:00",
	"person": {
		"gecos": "John Doe",
		"institute": {"name": "gent"},
		"institute_login": "jdoe",
		"realeppn": "jdoe@ugent.be"
	},
	"home_on_scratch": false,
	"unused_upstream_field": 12
}`

func TestAccount_UnmarshalJSON(t *testing.T) {
	var account models.Account
	require.NoError(t, json.Unmarshal([]byte(accountJSON), &account))

	assert.Equal(t, "vsc40075", account.VscID)
	assert.Equal(t, models.StatusActive, account.Status)
	assert.True(t, account.IsActive)
	assert.Nil(t, account.ExpiryDate)
	require.NotNil(t, account.GraceUntil)
	assert.Equal(t, models.Date{Year: 2020, Month: time.January, Day: 31}, *account.GraceUntil)
	assert.Equal(t, uint64(2540075), account.VscIDNumber)
	assert.Equal(t, []string{"Physics", "nuclear physics"}, account.ResearchField)
	assert.Equal(t, "gent", account.Person.Institute.Name)
	assert.Equal(t, "jdoe", account.Person.InstituteLogin)

	_, offset := account.CreateTimestamp.Zone()
	assert.Equal(t, 3600, offset)
	assert.True(t, account.CreateTimestamp.Equal(time.Date(2019, time.March, 4, 11, 30, 0, 0, time.UTC)))
}

func TestAccount_ReencodeKeepsModelFields(t *testing.T) {
	var account models.Account
	require.NoError(t, json.Unmarshal([]byte(accountJSON), &account))

	out, err := json.Marshal(account)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &got))

	assert.Equal(t, "2019-03-04T12:30:00+01:00", got["create_timestamp"])
	assert.Equal(t, "2020-01-31", got["grace_until"])
	assert.Contains(t, got, "expiry_date")
	assert.Nil(t, got["expiry_date"])
	assert.NotContains(t, got, "unused_upstream_field")
	assert.Len(t, got, 17)
}

func TestRoundTrip(t *testing.T) {
	expiry := models.Date{Year: 2021, Month: time.June, Day: 30}

	withDates := *factories.AccountFactory.MustCreate().(*models.Account)
	withDates.Status = models.StatusForceInactive
	withDates.ExpiryDate = &expiry
	withDates.GraceUntil = &expiry

	noFields := *factories.AccountFactory.MustCreate().(*models.Account)
	noFields.ResearchField = nil

	emptyFields := *factories.AccountFactory.MustCreate().(*models.Account)
	emptyFields.ResearchField = []string{}

	noMembers := *factories.VirtualOrganisationFactory.MustCreate().(*models.VirtualOrganisation)
	noMembers.Members = nil
	noMembers.Moderators = nil

	tests := []struct {
		name   string
		record interface{}
		target func() interface{}
	}{
		{
			name:   "account",
			record: factories.AccountFactory.MustCreate().(*models.Account),
			target: func() interface{} { return &models.Account{} },
		},
		{
			name:   "account with dates",
			record: &withDates,
			target: func() interface{} { return &models.Account{} },
		},
		{
			name:   "account without research fields",
			record: &noFields,
			target: func() interface{} { return &models.Account{} },
		},
		{
			name:   "account with empty research fields",
			record: &emptyFields,
			target: func() interface{} { return &models.Account{} },
		},
		{
			name:   "virtual organisation without members",
			record: &noMembers,
			target: func() interface{} { return &models.VirtualOrganisation{} },
		},
		{
			name:   "person",
			record: factories.PersonFactory.MustCreate().(*models.Person),
			target: func() interface{} { return &models.Person{} },
		},
		{
			name:   "virtual organisation",
			record: factories.VirtualOrganisationFactory.MustCreate().(*models.VirtualOrganisation),
			target: func() interface{} { return &models.VirtualOrganisation{} },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.record)
			require.NoError(t, err)

			got := tt.target()
			require.NoError(t, json.Unmarshal(data, got))

			assert.Equal(t, tt.record, got)
		})
	}
}

func TestAccount_UnmarshalJSON_Errors(t *testing.T) {
	tests := []struct {
		name      string
		patch     map[string]interface{}
		drop      string
		wantField string
		wantErr   error
	}{
		{
			name:      "missing vsc_id",
			drop:      "vsc_id",
			wantField: "vsc_id",
			wantErr:   models.ErrMissingField,
		},
		{
			name:      "missing research_field",
			drop:      "research_field",
			wantField: "research_field",
			wantErr:   models.ErrMissingField,
		},
		{
			name:      "null person",
			patch:     map[string]interface{}{"person": nil},
			wantField: "person",
			wantErr:   models.ErrMissingField,
		},
		{
			name:      "unknown status",
			patch:     map[string]interface{}{"status": "suspended"},
			wantField: "status",
			wantErr:   models.ErrUnknownStatus,
		},
		{
			name:      "bad expiry date",
			patch:     map[string]interface{}{"expiry_date": "31/01/2020"},
			wantField: "expiry_date",
		},
		{
			name:      "negative id number",
			patch:     map[string]interface{}{"vsc_id_number": -1},
			wantField: "vsc_id_number",
		},
		{
			name:      "person without gecos",
			patch:     map[string]interface{}{"person": map[string]interface{}{"institute": map[string]string{"name": "gent"}, "institute_login": "jdoe", "realeppn": "x"}},
			wantField: "gecos",
			wantErr:   models.ErrMissingField,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(accountJSON), &doc))
			for k, v := range tt.patch {
				doc[k] = v
			}
			if tt.drop != "" {
				delete(doc, tt.drop)
			}
			data, err := json.Marshal(doc)
			require.NoError(t, err)

			var account models.Account
			err = json.Unmarshal(data, &account)
			require.Error(t, err)

			var fe *models.FieldError
			require.True(t, errors.As(err, &fe), "expected a FieldError, got %v", err)
			assert.Equal(t, tt.wantField, fe.Field)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestVirtualOrganisation_UnmarshalJSON_MissingMembers(t *testing.T) {
	data := `{"vsc_id":"gvo00002","status":"active","vsc_id_number":2640002,"institute":{"name":"gent"},
		"fairshare":100,"data_path":"/d","scratch_path":"/s","description":"x","moderators":[]}`

	var vo models.VirtualOrganisation
	err := json.Unmarshal([]byte(data), &vo)

	var fe *models.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "vo", fe.Record)
	assert.Equal(t, "members", fe.Field)
}

func TestParseStatus(t *testing.T) {
	for _, st := range []models.Status{
		models.StatusActive,
		models.StatusInactive,
		models.StatusModified,
		models.StatusNew,
		models.StatusForceInactive,
		models.StatusForceActive,
	} {
		got, err := models.ParseStatus(string(st))
		assert.NoError(t, err)
		assert.Equal(t, st, got)
	}

	_, err := models.ParseStatus("Active")
	assert.ErrorIs(t, err, models.ErrUnknownStatus)

	_, err = json.Marshal(models.Status("bogus"))
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := models.ParseDate("2020-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2020-02-29", d.String())
	assert.Equal(t, models.Date{Year: 2020, Month: time.February, Day: 29}, d)

	_, err = models.ParseDate("2021-02-29")
	assert.Error(t, err)
}
