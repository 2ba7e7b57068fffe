package pappers

import (
	"context"
	"net/url"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/core/ports/driven"
	normaliser "github.com/custodia-labs/reflets-cli/internal/normalisers/pappers"
)

// Ensure Client implements the interface.
var _ driven.Registry = (*Client)(nil)

// frPage is a French search response.
type frPage struct {
	Results []domain.RawRecord `json:"resultats"`
	Total   int                `json:"total"`
}

// inPage is an international search response.
type inPage struct {
	Results []domain.RawRecord `json:"results"`
	Total   int                `json:"total"`
}

func (c *Client) searchFR(ctx context.Context, path string, params url.Values) (domain.RawPage, error) {
	var res frPage
	if err := c.get(ctx, c.config.FRBaseURL, path, params, &res); err != nil {
		return domain.RawPage{}, err
	}
	return domain.RawPage{Items: res.Results, Total: res.Total}, nil
}

func (c *Client) searchIN(ctx context.Context, path string, params url.Values) (domain.RawPage, error) {
	var res inPage
	if err := c.get(ctx, c.config.INBaseURL, path, params, &res); err != nil {
		return domain.RawPage{}, err
	}
	return domain.RawPage{Items: res.Results, Total: res.Total}, nil
}

// SearchOfficers searches the French registry for company officers.
func (c *Client) SearchOfficers(ctx context.Context, q domain.MatchConstraints, page, perPage int) (domain.RawPage, error) {
	return c.searchFR(ctx, pathOfficers, paginate(personQuery(q, subjectOfficer), page, perPage))
}

// SearchBeneficiaries searches the French registry for beneficial owners.
func (c *Client) SearchBeneficiaries(ctx context.Context, q domain.MatchConstraints, page, perPage int) (domain.RawPage, error) {
	return c.searchFR(ctx, pathBeneficiaries, paginate(personQuery(q, subjectBeneficiary), page, perPage))
}

// SearchOfficersInternational searches the international registry for officers.
func (c *Client) SearchOfficersInternational(ctx context.Context, q domain.MatchConstraints, countryCode string, page, perPage int) (domain.RawPage, error) {
	params := personQuery(q, subjectOfficer)
	params.Set(paramCountryCode, normaliser.RegistryCountryCode(countryCode))
	return c.searchIN(ctx, pathINOfficers, paginate(params, page, perPage))
}

// Company fetches a French company by SIREN.
func (c *Client) Company(ctx context.Context, id string) (domain.RawRecord, error) {
	params := url.Values{}
	params.Set(paramSIREN, normaliser.NormaliseID(id))

	var rec domain.RawRecord
	if err := c.get(ctx, c.config.FRBaseURL, pathCompany, params, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// CompanyInternational fetches a company from the international registry.
func (c *Client) CompanyInternational(ctx context.Context, countryCode, id string) (domain.RawRecord, error) {
	params := url.Values{}
	params.Set(paramCountryCode, normaliser.RegistryCountryCode(countryCode))
	params.Set(paramNumber, id)

	var rec domain.RawRecord
	if err := c.get(ctx, c.config.INBaseURL, pathINCompany, params, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// SearchHeadquarters searches French companies registered at an address.
func (c *Client) SearchHeadquarters(ctx context.Context, q domain.LocationQuery, page, perPage int) (domain.RawPage, error) {
	return c.searchFR(ctx, pathSearch, paginate(addressQuery(q, false), page, perPage))
}

// SearchHeadquartersInternational searches international companies registered at an address.
func (c *Client) SearchHeadquartersInternational(ctx context.Context, q domain.LocationQuery, page, perPage int) (domain.RawPage, error) {
	return c.searchIN(ctx, pathINSearch, paginate(addressQuery(q, true), page, perPage))
}

// SearchCompanies searches the international registry by company name.
func (c *Client) SearchCompanies(ctx context.Context, q domain.CompanyQuery, page, perPage int) (domain.RawPage, error) {
	return c.searchIN(ctx, pathINSearch, paginate(companyQuery(q), page, perPage))
}
