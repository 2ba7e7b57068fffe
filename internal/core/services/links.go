package services

import (
	"strings"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
)

// Link colours.
const (
	colorOfficer     = "#657a8b"
	colorBeneficiary = "#946b2d"
)

// Thickness of links to registered offices.
const headquartersThickness = 4

// officerLink describes a French officer's role in a company, read from
// the company's "dirigeant" object.
func officerLink(role domain.RawRecord) domain.Link {
	link := domain.Link{Color: colorOfficer}
	if role == nil {
		return link
	}

	title := "Dirigeant"
	if qualites := role.Strings("qualites"); len(qualites) > 0 && qualites[0] != "Autre" {
		title = qualites[0]
	}
	since := role.Text("date_prise_de_poste")

	if role.Bool("actuel") {
		link.Label = title + " actuel depuis " + since
	} else {
		link.Label = "Ancien " + title + " arrivé " + since
		link.Style = domain.LinkDashed
	}
	link.Label = strings.TrimSpace(link.Label)
	return link
}

// beneficiaryLink describes a beneficial owner's stake.
func beneficiaryLink(b domain.RawRecord) domain.Link {
	label := "Bénéficiaire"
	if shares := b.Text("pourcentage_parts"); shares != "" {
		label += " : parts: " + shares + " (" + b.Text("pourcentage_votes") + ")"
	}
	return domain.Link{Label: label, Color: colorBeneficiary}
}

// representativeLink describes a company representative. The link points
// from the representative to the company.
func representativeLink(r domain.RawRecord) domain.Link {
	label := r.Text("qualite")
	if label == "" || label == "Autre" {
		label = "Représentant"
	}
	if since := r.Text("date_prise_de_poste"); since != "" {
		label += " en " + since
	}
	return domain.Link{Label: label, Color: colorOfficer, Reversed: true}
}

// headquartersLink describes a French registered office.
func headquartersLink(office domain.RawRecord) domain.Link {
	return domain.Link{
		Label:     strings.TrimSpace("Siège since " + office.Text("date_de_creation")),
		Thickness: headquartersThickness,
	}
}

// establishmentLink describes a French secondary establishment.
func establishmentLink(e domain.RawRecord) domain.Link {
	from := e.Text("date_de_creation")
	if to := e.Text("date_cessation"); to != "" {
		return domain.Link{Label: "From " + from + " to " + to}
	}
	return domain.Link{Label: strings.TrimSpace("Since " + from)}
}

// internationalOfficerLink describes an officer returned by the
// international officer search. All positions are drawn dashed.
func internationalOfficerLink(officer domain.RawRecord) domain.Link {
	label := officer.Text("role")
	if kind := officer.Text("type"); kind != "" {
		label += "(" + kind + ")"
	}
	if since := officer.Text("date_of_appointment"); since != "" {
		label += " in " + since
	}
	return domain.Link{Label: label, Color: colorOfficer, Style: domain.LinkDashed}
}

// companyOfficerLink describes an officer listed on an international company.
func companyOfficerLink(officer domain.RawRecord) domain.Link {
	label := officer.Text("role")
	if since := officer.Text("date_of_appointment"); since != "" {
		label += " in " + since
	}
	return domain.Link{Label: strings.TrimSpace(label), Color: colorOfficer}
}

// uboLink describes an ultimate beneficial owner of an international company.
func uboLink(ubo domain.RawRecord) domain.Link {
	label := "Ubos"
	if shares := ubo.Text("percentage_of_shares"); shares != "" {
		label += " : shares: " + shares
	}
	return domain.Link{Label: label, Color: colorBeneficiary}
}

// headOfficeLink describes an international registered office.
func headOfficeLink() domain.Link {
	return domain.Link{Label: "Current headoffices", Thickness: headquartersThickness}
}

// mentionLink describes documents mentioning a searched address. The
// link points from the company to the address.
func mentionLink(documents []domain.RawRecord, dateKey string) domain.Link {
	if len(documents) == 0 {
		return domain.Link{Reversed: true}
	}
	dates := make([]string, 0, len(documents))
	for _, d := range documents {
		if date := d.Text(dateKey); date != "" {
			dates = append(dates, date)
		}
	}
	return domain.Link{Label: strings.TrimSpace("Mention in : " + strings.Join(dates, " ")), Reversed: true}
}
