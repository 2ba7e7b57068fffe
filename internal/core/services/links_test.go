package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
)

func TestOfficerLink(t *testing.T) {
	tests := []struct {
		name string
		role domain.RawRecord
		want domain.Link
	}{
		{
			name: "current",
			role: domain.RawRecord{"qualites": []any{"Président"}, "actuel": true, "date_prise_de_poste": "2010-01-01"},
			want: domain.Link{Label: "Président actuel depuis 2010-01-01", Color: colorOfficer},
		},
		{
			name: "former",
			role: domain.RawRecord{"qualites": []any{"Gérant"}, "actuel": false, "date_prise_de_poste": "2001-03-04"},
			want: domain.Link{Label: "Ancien Gérant arrivé 2001-03-04", Color: colorOfficer, Style: domain.LinkDashed},
		},
		{
			name: "other becomes officer",
			role: domain.RawRecord{"qualites": []any{"Autre"}, "actuel": true},
			want: domain.Link{Label: "Dirigeant actuel depuis", Color: colorOfficer},
		},
		{
			name: "no role",
			role: nil,
			want: domain.Link{Color: colorOfficer},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, officerLink(tt.role))
		})
	}
}

func TestBeneficiaryLink(t *testing.T) {
	link := beneficiaryLink(domain.RawRecord{"pourcentage_parts": 50.5, "pourcentage_votes": 60})

	assert.Equal(t, "Bénéficiaire : parts: 50.5 (60)", link.Label)
	assert.Equal(t, colorBeneficiary, link.Color)
}

func TestRepresentativeLink(t *testing.T) {
	link := representativeLink(domain.RawRecord{"qualite": "Autre", "date_prise_de_poste": "2015-06-01"})

	assert.Equal(t, "Représentant en 2015-06-01", link.Label)
	assert.True(t, link.Reversed)
}

func TestOfficeLinks(t *testing.T) {
	hq := headquartersLink(domain.RawRecord{"date_de_creation": "1990-01-01"})
	assert.Equal(t, "Siège since 1990-01-01", hq.Label)
	assert.Equal(t, headquartersThickness, hq.Thickness)

	assert.Equal(t, "From 1990-01-01 to 2000-01-01", establishmentLink(domain.RawRecord{"date_de_creation": "1990-01-01", "date_cessation": "2000-01-01"}).Label)
	assert.Equal(t, "Since 1990-01-01", establishmentLink(domain.RawRecord{"date_de_creation": "1990-01-01"}).Label)
	assert.Equal(t, headquartersThickness, headOfficeLink().Thickness)
}

func TestInternationalLinks(t *testing.T) {
	officer := domain.RawRecord{"role": "director", "type": "natural person", "date_of_appointment": "2018-02-01"}

	intl := internationalOfficerLink(officer)
	assert.Equal(t, "director(natural person) in 2018-02-01", intl.Label)
	assert.Equal(t, domain.LinkDashed, intl.Style)

	assert.Equal(t, "director in 2018-02-01", companyOfficerLink(officer).Label)
	assert.Equal(t, "Ubos : shares: 25-50%", uboLink(domain.RawRecord{"percentage_of_shares": "25-50%"}).Label)
}

func TestMentionLink(t *testing.T) {
	docs := []domain.RawRecord{{"date_depot": "2020-01-01"}, {"date_depot": "2021-02-02"}}

	link := mentionLink(docs, "date_depot")

	assert.Equal(t, "Mention in : 2020-01-01 2021-02-02", link.Label)
	assert.True(t, link.Reversed)
	assert.Equal(t, domain.Link{Reversed: true}, mentionLink(nil, "date"))
}
