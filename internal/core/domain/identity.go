package domain

// Identity is a natural person normalised from a registry record.
// Empty strings mean the source did not provide the field.
type Identity struct {
	// FirstName is the usual given name, title-cased.
	FirstName string

	// OtherFirstNames holds every given name as a single string.
	OtherFirstNames string

	// LastName is the family name, title-cased.
	LastName string

	// BirthDate is the day-precision birth date, formatted YYYY-MM-DD.
	BirthDate string

	// BirthMonth is the month-precision birth date, formatted YYYY-M
	// (no leading zero on the month).
	BirthMonth string

	// Age is the age reported by the registry, nil when absent.
	Age *int

	// Nationality is reported by the international registry only.
	Nationality string

	// MergeKey is the identifier used to merge this person with other
	// appearances of the same person in the graph.
	MergeKey string
}

// HasBirthMonth returns true if a month-precision birth date is known.
func (i Identity) HasBirthMonth() bool {
	return i.BirthMonth != ""
}

// HasBirthDate returns true if a day-precision birth date is known.
func (i Identity) HasBirthDate() bool {
	return i.BirthDate != ""
}

// MatchConstraints describe the person being searched for.
// They drive the registry query and the admission of returned records.
type MatchConstraints struct {
	// FirstName is the usual given name.
	FirstName string `json:"first_name" validate:"required"`

	// LastName is the family name.
	LastName string `json:"last_name" validate:"required"`

	// OtherFirstNames, when set, replaces FirstName in the registry query.
	OtherFirstNames string `json:"other_first_names,omitempty"`

	// BirthMonth is the month-precision birth date (YYYY-MM or YYYY-M).
	BirthMonth string `json:"birth_month,omitempty" validate:"omitempty,yearmonth"`

	// BirthDate is the day-precision birth date (YYYY-MM-DD).
	BirthDate string `json:"birth_date,omitempty" validate:"omitempty,isodate"`

	// Age is the expected age.
	Age *int `json:"age,omitempty" validate:"omitempty,min=0,max=150"`
}
