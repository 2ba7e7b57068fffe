package pappers

import (
	"strings"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/logger"
)

// countryCodes maps upper-cased country names, as registries spell them,
// to ISO 3166-1 alpha-2 codes.
var countryCodes = map[string]string{
	"FRANCE":         "FR",
	"UNITED STATES":  "US",
	"ETATS-UNIS":     "US",
	"ÉTATS-UNIS":     "US",
	"ENGLAND":        "GB",
	"UNITED KINGDOM": "GB",
	"ROYAUME-UNI":    "GB",
	"SWITZERLAND":    "CH",
	"SUISSE":         "CH",
	"BELGIQUE":       "BE",
	"BELGIUM":        "BE",
	"NETHERLANDS":    "NL",
	"PAYS-BAS":       "NL",
	"LUXEMBOURG":     "LU",
	"LU":             "LU",
}

// cityCountryCodes resolves cities whose records carry no country at all.
var cityCountryCodes = map[string]string{
	"ZÜRICH": "CH",
	"ZURICH": "CH",
}

// CanonicalCountryCode upper-cases a code and rewrites UK to GB.
func CanonicalCountryCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "UK" {
		return "GB"
	}
	return code
}

// RegistryCountryCode is the inverse rewrite used on outbound queries:
// the international registry knows the United Kingdom as UK.
func RegistryCountryCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "GB" {
		return "UK"
	}
	return code
}

// Location normalises an address record from either schema.
func (n *Normaliser) Location(rec domain.RawRecord) (domain.Location, error) {
	if rec == nil {
		return domain.Location{}, domain.ErrInvalidInput
	}
	loc, err := location(rec)
	if err != nil {
		return loc, err
	}
	if loc.CountrySource == domain.CountryUnresolved {
		logger.Warn("cannot resolve country code for country %q city %q", loc.Country, loc.City)
	}
	return loc, nil
}

func location(rec domain.RawRecord) (domain.Location, error) {
	var loc domain.Location

	line1, _, err := first(rec, aliasAddressLine1...)
	if err != nil {
		return loc, err
	}
	line2, _, err := first(rec, aliasAddressLine2...)
	if err != nil {
		return loc, err
	}
	loc.Address = joinNonEmpty(", ", line1, line2)

	if loc.City, _, err = first(rec, aliasCity...); err != nil {
		return loc, err
	}
	if loc.PostalCode, _, err = first(rec, aliasPostalCode...); err != nil {
		return loc, err
	}
	if loc.Country, _, err = first(rec, aliasCountry...); err != nil {
		return loc, err
	}
	code, _, err := first(rec, aliasCountryCode...)
	if err != nil {
		return loc, err
	}

	loc.CountryCode, loc.CountrySource = resolveCountry(code, loc.Country, loc.City)
	return loc, nil
}

// resolveCountry applies the precedence explicit code, then country name,
// then city. The first rule that yields a code wins.
func resolveCountry(code, country, city string) (string, domain.CountrySource) {
	if code != "" {
		return CanonicalCountryCode(code), domain.CountryFromCode
	}
	if cc, ok := countryCodes[strings.ToUpper(strings.TrimSpace(country))]; ok {
		return cc, domain.CountryFromName
	}
	if cc, ok := cityCountryCodes[strings.ToUpper(strings.TrimSpace(city))]; ok {
		return cc, domain.CountryFromCity
	}
	return "", domain.CountryUnresolved
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
