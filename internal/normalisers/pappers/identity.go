package pappers

import (
	"strings"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
)

// Identity normalises a person record from either schema.
func (n *Normaliser) Identity(rec domain.RawRecord) (domain.Identity, error) {
	var id domain.Identity
	if rec == nil {
		return id, domain.ErrInvalidInput
	}

	var err error
	if id.BirthMonth, id.BirthDate, err = birthDates(rec); err != nil {
		return id, err
	}

	other, _, err := first(rec, aliasOtherFirstNames...)
	if err != nil {
		return id, err
	}
	id.OtherFirstNames = NormaliseName(other)

	usual, _, err := first(rec, aliasFirstName...)
	if err != nil {
		return id, err
	}
	if usual != "" {
		id.FirstName = NormaliseName(usual)
	} else {
		given, _, err := first(rec, aliasFirstNames...)
		if err != nil {
			return id, err
		}
		if tokens := strings.Fields(given); len(tokens) > 0 {
			id.FirstName = NormaliseName(tokens[0])
			if id.OtherFirstNames == "" && len(tokens) > 1 {
				id.OtherFirstNames = NormaliseName(given)
			}
		}
	}

	last, _, err := first(rec, aliasLastName...)
	if err != nil {
		return id, err
	}
	id.LastName = NormaliseName(last)

	for _, key := range aliasAge {
		age, err := rec.Int(key)
		if err != nil {
			return id, err
		}
		if age != nil {
			id.Age = age
			break
		}
	}

	if id.Nationality, _, err = first(rec, aliasNationality...); err != nil {
		return id, err
	}

	return id, nil
}

// dateSource reads one birth date field into year-first form.
type dateSource struct {
	field string
	parse func(field, value string) (month, date string, err error)
}

var monthSources = []dateSource{
	{aliasBirthMonthFormatted, func(field, v string) (string, string, error) {
		month, err := ReorderDate(field, v, "/", 2)
		return month, "", err
	}},
	{aliasBirthMonthISO, func(field, v string) (string, string, error) {
		return v, "", checkISODate(field, v, 2)
	}},
	{aliasBirthInternational, func(field, v string) (string, string, error) {
		if strings.Count(v, "-") == 1 {
			return v, "", checkISODate(field, v, 2)
		}
		if err := checkISODate(field, v, 3); err != nil {
			return "", "", err
		}
		return MonthOf(v), v, nil
	}},
}

var dateSources = []dateSource{
	{aliasBirthDateFormatted, func(field, v string) (string, string, error) {
		date, err := ReorderDate(field, v, "/", 3)
		return "", date, err
	}},
	{aliasBirthDateISO, func(field, v string) (string, string, error) {
		return "", v, checkISODate(field, v, 3)
	}},
}

// birthDates resolves the month-precision and day-precision birth dates.
// The month comes from the first present of: the MM/YYYY field, the YYYY-MM
// field, the international date of birth. The day comes from the DD/MM/YYYY
// field, then the YYYY-MM-DD field. A missing month is derived from the day.
func birthDates(rec domain.RawRecord) (month, date string, err error) {
	for _, src := range monthSources {
		v, err := rec.String(src.field)
		if err != nil {
			return "", "", err
		}
		if v == "" {
			continue
		}
		if month, date, err = src.parse(src.field, v); err != nil {
			return "", "", err
		}
		break
	}

	for _, src := range dateSources {
		v, err := rec.String(src.field)
		if err != nil {
			return "", "", err
		}
		if v == "" {
			continue
		}
		if _, date, err = src.parse(src.field, v); err != nil {
			return "", "", err
		}
		break
	}

	if month == "" && date != "" {
		month = MonthOf(date)
	}
	return NormaliseDateMonth(month), date, nil
}
