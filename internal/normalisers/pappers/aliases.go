package pappers

import "github.com/custodia-labs/reflets-cli/internal/core/domain"

// Identity aliases.
var (
	// Month-precision birth date formatted MM/YYYY.
	aliasBirthMonthFormatted = "date_de_naissance_formatee"
	// Month-precision birth date formatted YYYY-MM.
	aliasBirthMonthISO = "date_de_naissance_rgpd"
	// International date of birth, YYYY-MM or YYYY-MM-DD.
	aliasBirthInternational = "date_of_birth"
	// Day-precision birth date formatted DD/MM/YYYY.
	aliasBirthDateFormatted = "date_de_naissance_complete_formatee"
	// Day-precision birth date formatted YYYY-MM-DD.
	aliasBirthDateISO = "date_de_naissance"

	aliasOtherFirstNames = []string{"prenom"}
	aliasFirstName       = []string{"prenom_usuel"}
	aliasFirstNames      = []string{"first_name"}
	aliasLastName        = []string{"nom", "last_name"}
	aliasAge             = []string{"age"}
	aliasNationality     = []string{"nationalite", "nationality"}
)

// Location aliases.
var (
	aliasCountryCode  = []string{"code_pays", "country_code"}
	aliasCountry      = []string{"pays", "country"}
	aliasAddressLine1 = []string{"adresse_ligne_1", "address_line_1"}
	aliasAddressLine2 = []string{"adresse_ligne_2", "address_line_2"}
	aliasCity         = []string{"ville", "city"}
	aliasPostalCode   = []string{"code_postal", "postal_code"}
)

// Company aliases.
var (
	aliasCompanyID    = []string{"siren", "company_number"}
	aliasCompanyName  = []string{"nom_entreprise", "nom_complet", "name", "company_name", "denomination"}
	aliasActivity     = []string{"libelle_code_naf", "purpose"}
	aliasLegalForm    = []string{"forme_juridique", "local_legal_form_name"}
	aliasRegistry     = []string{"greffe"}
	aliasRCS          = []string{"numero_rcs"}
	aliasVAT          = []string{"numero_tva_intracommunautaire"}
	aliasCreatedOn    = []string{"date_creation", "date_de_creation", "date_of_creation"}
	aliasCeasedOn     = []string{"date_cessation", "date_of_cessation"}
	aliasHeadquarters = []string{"siege", "head_office"}
)

// first returns the first alias holding a non-blank scalar, and the alias
// that matched. A matched alias of the wrong shape fails the record.
func first(rec domain.RawRecord, aliases ...string) (value, alias string, err error) {
	for _, key := range aliases {
		s, err := rec.String(key)
		if err != nil {
			return "", key, err
		}
		if s != "" {
			return s, key, nil
		}
	}
	return "", "", nil
}

// firstObject returns the first alias holding an object.
func firstObject(rec domain.RawRecord, aliases ...string) (domain.RawRecord, bool, error) {
	for _, key := range aliases {
		obj, ok, err := rec.Object(key)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return obj, true, nil
		}
	}
	return nil, false, nil
}
