package services

import (
	"strconv"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
)

// Colour overlay marking a ceased company.
const colorCeased = "#FF0000"

// PersonEntity maps an identity with its merge key to a person entity.
func PersonEntity(id domain.Identity) domain.Entity {
	if id.MergeKey == "" {
		id.MergeKey = MergeKey(id)
	}
	e := domain.NewEntity(domain.EntityPerson, id.MergeKey)
	e.Set("date_naissance", "Naissance", domain.MatchStrict, id.BirthDate)
	e.Set("date_naissance_rgpd", "Naissance RGPD", domain.MatchStrict, id.BirthMonth)
	e.Set("person.lastname", "Lastname", domain.MatchLoose, id.LastName)
	e.Set("person.firstnames", "Firstname", domain.MatchLoose, id.FirstName)
	e.Set("prenoms", "Prenoms", domain.MatchLoose, id.OtherFirstNames)
	if id.Age != nil {
		e.Set("age", "Age", domain.MatchLoose, strconv.Itoa(*id.Age))
	}
	e.Set("dirigeant", "Dirigeant", domain.MatchLoose, id.MergeKey)
	e.Set("nationality", "Nationality", domain.MatchLoose, id.Nationality)
	return e
}

// CompanyEntity maps a company to a company entity.
// Companies without a registration number are keyed by name.
func CompanyEntity(c domain.Company) (domain.Entity, error) {
	value := c.ID
	if value == "" {
		value = c.Name
	}
	if value == "" {
		return domain.Entity{}, domain.NewRecordError("siren", nil, "company has neither number nor name")
	}

	e := domain.NewEntity(domain.EntityCompany, value)
	e.Set("id_tax_number", "siren_vat", domain.MatchStrict, c.ID)
	e.Set("activity", "Activity", domain.MatchLoose, c.Activity)
	e.Set("greffe", "Greffe", domain.MatchLoose, c.Registry)
	e.Set("rcs", "R.C.S", domain.MatchLoose, c.RCS)
	e.Set("tva", "Num T.V.A", domain.MatchLoose, c.VAT)
	e.Set("forme_juridique", "Forme juridique", domain.MatchLoose, c.LegalForm)
	e.Set("nom_usuel", "Nom", domain.MatchLoose, c.Name)
	e.Set("date_creation", "Creation date", domain.MatchLoose, c.CreatedOn)
	if !c.Active() {
		e.Set("date_cessation", "Date cessation", domain.MatchLoose, c.CeasedOn)
		e.Set("is_activ", "Currently Activ", domain.MatchLoose, colorCeased)
	}
	e.Set("headquarters_address", "Siege", domain.MatchLoose, c.Headquarters.Address)
	e.Set("headquarters_city", "Siege", domain.MatchLoose, c.Headquarters.City)
	e.Set("country", "Country", domain.MatchLoose, c.Headquarters.Country)
	e.Set("postalcode", "Postal code", domain.MatchLoose, c.Headquarters.PostalCode)
	e.Set("countrycode", "Country Code", domain.MatchLoose, c.CountryCode)
	return e, nil
}

// LocationEntity maps an office address to a location entity. Locations
// without a resolvable country code get defaultCountry.
func LocationEntity(loc domain.Location, activity, defaultCountry string) (domain.Entity, error) {
	value := loc.Address
	if value == "" {
		value = loc.City
	}
	if value == "" {
		return domain.Entity{}, domain.NewRecordError("adresse_ligne_1", nil, "office has neither address nor city")
	}

	e := domain.NewEntity(domain.EntityLocation, value)
	e.Set("streetaddress", "Street Address", domain.MatchStrict, loc.Address)
	e.Set("city", "City", domain.MatchLoose, loc.City)
	e.Set("country", "Country", domain.MatchLoose, loc.Country)
	e.Set("postalcode", "Postal code", domain.MatchLoose, loc.PostalCode)
	code := loc.CountryCode
	if code == "" {
		code = defaultCountry
	}
	e.Set("countrycode", "Country code", domain.MatchLoose, code)
	e.Set("activity", "Activity", domain.MatchLoose, activity)
	return e, nil
}

// PersonQueryEntity is the person a person search starts from.
func PersonQueryEntity(q domain.MatchConstraints) domain.Entity {
	id := domain.Identity{
		FirstName:       q.FirstName,
		OtherFirstNames: q.OtherFirstNames,
		LastName:        q.LastName,
		BirthMonth:      canonicalMonth(q.BirthMonth),
		BirthDate:       q.BirthDate,
		Age:             q.Age,
	}
	return PersonEntity(id)
}

// CompanyQueryEntity is the company a company lookup or name search starts from.
func CompanyQueryEntity(q domain.CompanyQuery) domain.Entity {
	value := q.ID
	if value == "" {
		value = q.Name
	}
	e := domain.NewEntity(domain.EntityCompany, value)
	e.Set("id_tax_number", "siren_vat", domain.MatchStrict, q.ID)
	e.Set("nom_usuel", "Nom", domain.MatchLoose, q.Name)
	e.Set("countrycode", "Country Code", domain.MatchLoose, q.CountryCode)
	return e
}

// LocationQueryEntity is the address an address search starts from.
func LocationQueryEntity(q domain.LocationQuery) domain.Entity {
	e := domain.NewEntity(domain.EntityLocation, q.StreetAddress)
	e.Set("streetaddress", "Street Address", domain.MatchStrict, q.StreetAddress)
	e.Set("city", "City", domain.MatchLoose, q.City)
	e.Set("postalcode", "Postal code", domain.MatchLoose, q.PostalCode)
	e.Set("countrycode", "Country code", domain.MatchLoose, q.CountryCode)
	return e
}
