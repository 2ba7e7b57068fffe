package domain

// CountrySource records which rule resolved a location's country code.
type CountrySource string

// Country code resolution sources, in precedence order.
const (
	// CountryFromCode means the record carried an explicit code.
	CountryFromCode CountrySource = "code"

	// CountryFromName means the country name was looked up.
	CountryFromName CountrySource = "name"

	// CountryFromCity means a city-specific rule applied.
	CountryFromCity CountrySource = "city"

	// CountryUnresolved means no rule applied.
	CountryUnresolved CountrySource = "unresolved"
)

// Location is a postal address normalised from a registry record.
type Location struct {
	// Address is the street address, both address lines joined by ", ".
	Address string

	// City is the city name as reported.
	City string

	// PostalCode is the postal code as reported.
	PostalCode string

	// Country is the country name as reported.
	Country string

	// CountryCode is the ISO 3166-1 alpha-2 code; the United Kingdom is GB.
	CountryCode string

	// CountrySource tells how CountryCode was obtained.
	CountrySource CountrySource
}

// IsZero returns true if the location carries no address information.
func (l Location) IsZero() bool {
	return l.Address == "" && l.City == "" && l.PostalCode == "" && l.Country == "" && l.CountryCode == ""
}

// LocationQuery describes an address to search registered offices for.
type LocationQuery struct {
	StreetAddress string `json:"street_address" validate:"required"`
	PostalCode    string `json:"postal_code,omitempty"`
	City          string `json:"city" validate:"required"`
	CountryCode   string `json:"country_code,omitempty" validate:"omitempty,len=2"`
}
