package pappers

import (
	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/logger"
)

// Company normalises a company record from either schema.
// The headquarters are read from the nested office object when present,
// otherwise from the record's own address fields.
func (n *Normaliser) Company(rec domain.RawRecord, countryCode string) (domain.Company, error) {
	var c domain.Company
	if rec == nil {
		return c, domain.ErrInvalidInput
	}

	id, _, err := first(rec, aliasCompanyID...)
	if err != nil {
		return c, err
	}
	c.ID = NormaliseID(id)

	fields := []struct {
		dst     *string
		aliases []string
	}{
		{&c.Name, aliasCompanyName},
		{&c.Activity, aliasActivity},
		{&c.LegalForm, aliasLegalForm},
		{&c.Registry, aliasRegistry},
		{&c.RCS, aliasRCS},
		{&c.VAT, aliasVAT},
		{&c.CreatedOn, aliasCreatedOn},
		{&c.CeasedOn, aliasCeasedOn},
	}
	for _, f := range fields {
		if *f.dst, _, err = first(rec, f.aliases...); err != nil {
			return c, err
		}
	}

	// The international schema lists activities instead of a NAF label.
	if c.Activity == "" {
		activities, err := rec.Objects("local_activities")
		if err != nil {
			return c, err
		}
		if len(activities) > 0 {
			c.Activity = activities[0].Text("description")
		}
	}

	office, ok, err := firstObject(rec, aliasHeadquarters...)
	if err != nil {
		return c, err
	}
	if !ok {
		office = rec
	}
	if c.Headquarters, err = location(office); err != nil {
		return c, err
	}

	c.CountryCode = c.Headquarters.CountryCode
	if c.CountryCode == "" {
		c.CountryCode = CanonicalCountryCode(countryCode)
	}
	if c.CountryCode == "" && !c.Headquarters.IsZero() {
		logger.Warn("cannot resolve country code for company %s", c.ID)
	}
	return c, nil
}
