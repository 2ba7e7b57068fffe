package pappers

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	normaliser "github.com/custodia-labs/reflets-cli/internal/normalisers/pappers"
)

// Query parameter names.
const (
	paramToken       = "api_token"
	paramQuery       = "q"
	paramPage        = "page"
	paramPerPage     = "par_page"
	paramSIREN       = "siren"
	paramCountryCode = "country_code"
	paramNumber      = "company_number"
)

// Subject of a French person search, used in the filter parameter names.
const (
	subjectOfficer     = "dirigeant"
	subjectBeneficiary = "beneficiaire"
)

// searchBases lists the French databases an address search looks into.
const searchBases = "entreprises,dirigeants,beneficiaires,documents,publications"

var trailingDigits = regexp.MustCompile(`(?is)\d+\s*$`)

// personQuery builds the search parameters for a person. Several known
// first names are searched together; otherwise the usual first name is used.
// A birth date becomes an exact DD-MM-YYYY range and an age an exact age range.
func personQuery(q domain.MatchConstraints, subject string) url.Values {
	v := url.Values{}

	given := q.FirstName
	if q.OtherFirstNames != "" {
		given = q.OtherFirstNames
	}
	v.Set(paramQuery, strings.TrimSpace(given+" "+q.LastName))

	if day := dayFirst(q.BirthDate); day != "" {
		v.Set("date_de_naissance_"+subject+"_min", day)
		v.Set("date_de_naissance_"+subject+"_max", day)
	}
	if q.Age != nil {
		age := strconv.Itoa(*q.Age)
		v.Set("age_"+subject+"_min", age)
		v.Set("age_"+subject+"_max", age)
	}
	return v
}

// dayFirst turns YYYY-MM-DD into DD-MM-YYYY. Other layouts yield "".
func dayFirst(date string) string {
	parts := strings.Split(strings.TrimSpace(date), "-")
	if len(parts) != 3 {
		return ""
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// addressQuery builds an exact-match registered office search.
// The French registry gets the postal code and a city without its
// arrondissement number; the international one only the city.
func addressQuery(q domain.LocationQuery, international bool) url.Values {
	v := url.Values{}

	terms := []string{`"` + strings.TrimSpace(q.StreetAddress) + `"`}
	if international {
		terms = append(terms, strings.TrimSpace(q.City))
		v.Set(paramCountryCode, normaliser.RegistryCountryCode(q.CountryCode))
	} else {
		terms = append(terms, strings.TrimSpace(q.PostalCode), strings.TrimSpace(trailingDigits.ReplaceAllString(q.City, "")))
	}
	v.Set(paramQuery, strings.Join(nonEmpty(terms), " "))

	v.Set("siege", "true")
	v.Set("precision", "exacte")
	v.Set("bases", searchBases)
	return v
}

// companyQuery builds an international company name search.
func companyQuery(q domain.CompanyQuery) url.Values {
	v := url.Values{}
	v.Set(paramQuery, strings.TrimSpace(q.Name))
	v.Set(paramCountryCode, normaliser.RegistryCountryCode(q.CountryCode))
	return v
}

// paginate adds the page parameters.
func paginate(v url.Values, page, perPage int) url.Values {
	v.Set(paramPage, strconv.Itoa(page))
	if perPage > 0 {
		v.Set(paramPerPage, strconv.Itoa(perPage))
	}
	return v
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
