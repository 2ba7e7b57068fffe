package domain

// Company is a company record normalised from either registry schema.
type Company struct {
	// ID is the registration number (SIREN or company number).
	ID string

	// Name is the registered name.
	Name string

	// Activity describes the business activity.
	Activity string

	// LegalForm is the legal form label.
	LegalForm string

	// Registry is the registering court (French records only).
	Registry string

	// RCS is the trade register number (French records only).
	RCS string

	// VAT is the intra-community VAT number (French records only).
	VAT string

	// CreatedOn is the creation date as reported.
	CreatedOn string

	// CeasedOn is the cessation date, empty while the company is active.
	CeasedOn string

	// CountryCode is the registry's country for this company.
	CountryCode string

	// Headquarters is the registered office.
	Headquarters Location
}

// Active returns true if the company has not ceased trading.
func (c Company) Active() bool {
	return c.CeasedOn == ""
}

// CompanyQuery identifies a company by registration number or by name.
type CompanyQuery struct {
	// ID is the registration number, used for detail lookups.
	ID string `json:"id,omitempty"`

	// Name is used for name searches.
	Name string `json:"name,omitempty"`

	// CountryCode selects the registry; empty means FR.
	CountryCode string `json:"country_code,omitempty" validate:"omitempty,len=2"`
}
