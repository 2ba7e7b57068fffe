package pappers

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
)

func record(t *testing.T, s string) domain.RawRecord {
	t.Helper()
	var rec domain.RawRecord
	require.NoError(t, json.Unmarshal([]byte(s), &rec))
	return rec
}

func TestIdentity_FrenchOfficer(t *testing.T) {
	rec := record(t, `{
		"nom": "DUPONT",
		"prenom": "Jean Marc",
		"prenom_usuel": "jean",
		"date_de_naissance_formatee": "05/1970",
		"date_de_naissance_complete_formatee": "12/05/1970",
		"age": 54,
		"nationalite": "Française"
	}`)

	id, err := New().Identity(rec)
	require.NoError(t, err)

	assert.Equal(t, "Jean", id.FirstName)
	assert.Equal(t, "Jean Marc", id.OtherFirstNames)
	assert.Equal(t, "Dupont", id.LastName)
	assert.Equal(t, "1970-5", id.BirthMonth)
	assert.Equal(t, "1970-05-12", id.BirthDate)
	require.NotNil(t, id.Age)
	assert.Equal(t, 54, *id.Age)
	assert.Equal(t, "Française", id.Nationality)
	assert.Empty(t, id.MergeKey)
}

func TestIdentity_MonthPadding(t *testing.T) {
	id, err := New().Identity(record(t, `{"nom":"Dupont","prenom_usuel":"Jean","date_de_naissance_formatee":"05/1970"}`))
	require.NoError(t, err)

	assert.Equal(t, "1970-5", id.BirthMonth)
	assert.Empty(t, id.BirthDate)
}

func TestIdentity_MonthPrecedence(t *testing.T) {
	rec := record(t, `{
		"nom": "Dupont",
		"date_de_naissance_formatee": "05/1970",
		"date_de_naissance_rgpd": "1971-06",
		"date_of_birth": "1972-07"
	}`)

	id, err := New().Identity(rec)
	require.NoError(t, err)
	assert.Equal(t, "1970-5", id.BirthMonth)

	delete(rec, "date_de_naissance_formatee")
	id, err = New().Identity(rec)
	require.NoError(t, err)
	assert.Equal(t, "1971-6", id.BirthMonth)

	delete(rec, "date_de_naissance_rgpd")
	id, err = New().Identity(rec)
	require.NoError(t, err)
	assert.Equal(t, "1972-7", id.BirthMonth)
}

func TestIdentity_MonthDerivedFromDay(t *testing.T) {
	id, err := New().Identity(record(t, `{"nom":"Dupont","date_de_naissance":"1970-05-12"}`))
	require.NoError(t, err)

	assert.Equal(t, "1970-05-12", id.BirthDate)
	assert.Equal(t, "1970-5", id.BirthMonth)
}

func TestIdentity_InternationalSchema(t *testing.T) {
	rec := record(t, `{
		"first_name": "John Paul",
		"last_name": "SMITH",
		"date_of_birth": "1965-03",
		"nationality": "British"
	}`)

	id, err := New().Identity(rec)
	require.NoError(t, err)

	assert.Equal(t, "John", id.FirstName)
	assert.Equal(t, "John Paul", id.OtherFirstNames)
	assert.Equal(t, "Smith", id.LastName)
	assert.Equal(t, "1965-3", id.BirthMonth)
	assert.Empty(t, id.BirthDate)
	assert.Equal(t, "British", id.Nationality)
}

func TestIdentity_InternationalDayPrecision(t *testing.T) {
	id, err := New().Identity(record(t, `{"first_name":"Anna","last_name":"Meier","date_of_birth":"1980-01-31"}`))
	require.NoError(t, err)

	assert.Equal(t, "1980-1", id.BirthMonth)
	assert.Equal(t, "1980-01-31", id.BirthDate)
}

func TestIdentity_UsualFirstNameWins(t *testing.T) {
	id, err := New().Identity(record(t, `{"prenom_usuel":"Marie","first_name":"Anne","nom":"Curie","last_name":"Other"}`))
	require.NoError(t, err)

	assert.Equal(t, "Marie", id.FirstName)
	assert.Equal(t, "Curie", id.LastName)
}

func TestIdentity_MissingFieldsAreEmpty(t *testing.T) {
	id, err := New().Identity(record(t, `{"nom":"Dupont","prenom_usuel":null,"age":null}`))
	require.NoError(t, err)

	assert.Empty(t, id.FirstName)
	assert.Empty(t, id.BirthMonth)
	assert.Empty(t, id.BirthDate)
	assert.Nil(t, id.Age)
}

func TestIdentity_MalformedRecords(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"month without separator", `{"nom":"Dupont","date_de_naissance_formatee":"1970"}`},
		{"non numeric day", `{"nom":"Dupont","date_de_naissance_complete_formatee":"xx/05/1970"}`},
		{"object as name", `{"nom":{"value":"Dupont"}}`},
		{"text age", `{"nom":"Dupont","age":"old"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Identity(record(t, tt.json))
			assert.True(t, errors.Is(err, domain.ErrMalformedRecord))
		})
	}
}

func TestIdentity_NilRecord(t *testing.T) {
	_, err := New().Identity(nil)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestIdentity_Idempotent(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"french formatted dates", `{
			"nom": "DUPONT", "prenom": "jean marc", "prenom_usuel": "jean",
			"date_de_naissance_formatee": "05/1970",
			"date_de_naissance_complete_formatee": "12/05/1970",
			"age": 54, "nationalite": "Française"
		}`},
		{"french iso dates", `{
			"nom": "DUPONT", "prenom_usuel": "jean",
			"date_de_naissance_rgpd": "1970-05",
			"date_de_naissance": "1970-05-12"
		}`},
		{"international month", `{
			"last_name": "SMITH", "first_name": "john james",
			"date_of_birth": "1970-05", "nationality": "British"
		}`},
		{"international day", `{
			"last_name": "SMITH", "first_name": "john",
			"date_of_birth": "1970-05-12"
		}`},
		{"day only", `{"nom": "Dupont", "prenom_usuel": "Jean", "date_de_naissance": "1970-05-12"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := record(t, tt.json)
			n := New()

			once, err := n.Identity(rec)
			require.NoError(t, err)
			twice, err := n.Identity(rec)
			require.NoError(t, err)

			assert.Equal(t, once, twice)
			assert.Equal(t, record(t, tt.json), rec, "record must not be modified")
		})
	}
}
