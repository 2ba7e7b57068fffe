package pappers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/logger"
)

type staticToken string

func (s staticToken) GetToken(context.Context) (string, error) {
	if s == "" {
		return "", domain.ErrAuthRequired
	}
	return string(s), nil
}

func (s staticToken) IsAuthenticated() bool { return s != "" }

// recorder is a fake registry answering every request with status and body.
type recorder struct {
	mu       sync.Mutex
	requests []*url.URL
	status   int
	body     any
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	r.requests = append(r.requests, req.URL)
	r.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(r.status)
	_ = json.NewEncoder(w).Encode(r.body)
}

func (r *recorder) last(t *testing.T) *url.URL {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.requests)
	return r.requests[len(r.requests)-1]
}

func newTestClient(t *testing.T, rec *recorder) *Client {
	t.Helper()
	srv := httptest.NewServer(rec)
	t.Cleanup(srv.Close)
	return NewClient(staticToken("secret-token"), Config{
		FRBaseURL: srv.URL + "/v2",
		INBaseURL: srv.URL + "/v1",
		Timeout:   5 * time.Second,
	}, WithRateLimiter(NewRateLimiter(0)))
}

func TestClient_SearchOfficers(t *testing.T) {
	rec := &recorder{status: http.StatusOK, body: map[string]any{
		"resultats": []any{map[string]any{"nom": "Dupont"}},
		"total":     1,
	}}
	c := newTestClient(t, rec)

	page, err := c.SearchOfficers(context.Background(), domain.MatchConstraints{
		FirstName:       "Jean",
		OtherFirstNames: "Jean Marie",
		LastName:        "Dupont",
		BirthDate:       "1970-05-12",
		Age:             func() *int { n := 54; return &n }(),
	}, 2, 20)

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Dupont", page.Items[0].Text("nom"))
	assert.Equal(t, 1, page.Total)

	u := rec.last(t)
	assert.Equal(t, "/v2/recherche-dirigeants", u.Path)
	q := u.Query()
	assert.Equal(t, "secret-token", q.Get("api_token"))
	assert.Equal(t, "Jean Marie Dupont", q.Get("q"))
	assert.Equal(t, "12-05-1970", q.Get("date_de_naissance_dirigeant_min"))
	assert.Equal(t, "12-05-1970", q.Get("date_de_naissance_dirigeant_max"))
	assert.Equal(t, "54", q.Get("age_dirigeant_min"))
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "20", q.Get("par_page"))
}

func TestClient_SearchBeneficiaries_UsesBeneficiaryFilters(t *testing.T) {
	rec := &recorder{status: http.StatusOK, body: map[string]any{"resultats": []any{}}}
	c := newTestClient(t, rec)

	_, err := c.SearchBeneficiaries(context.Background(), domain.MatchConstraints{
		FirstName: "Jean", LastName: "Dupont", BirthDate: "1970-05-12",
	}, 1, 20)

	require.NoError(t, err)
	u := rec.last(t)
	assert.Equal(t, "/v2/recherche-beneficiaires", u.Path)
	assert.Equal(t, "Jean Dupont", u.Query().Get("q"))
	assert.Equal(t, "12-05-1970", u.Query().Get("date_de_naissance_beneficiaire_min"))
	assert.Empty(t, u.Query().Get("date_de_naissance_dirigeant_min"))
}

func TestClient_SearchOfficersInternational(t *testing.T) {
	rec := &recorder{status: http.StatusOK, body: map[string]any{
		"results": []any{map[string]any{"last_name": "Smith"}, map[string]any{"last_name": "Smyth"}},
		"total":   2,
	}}
	c := newTestClient(t, rec)

	page, err := c.SearchOfficersInternational(context.Background(), domain.MatchConstraints{FirstName: "John", LastName: "Smith"}, "GB", 1, 20)

	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	u := rec.last(t)
	assert.Equal(t, "/v1/search-officers", u.Path)
	assert.Equal(t, "UK", u.Query().Get("country_code"))
}

func TestClient_Company(t *testing.T) {
	rec := &recorder{status: http.StatusOK, body: map[string]any{"siren": "552100554", "nom_entreprise": "Acme"}}
	c := newTestClient(t, rec)

	company, err := c.Company(context.Background(), "552 100 554")

	require.NoError(t, err)
	assert.Equal(t, "Acme", company.Text("nom_entreprise"))
	u := rec.last(t)
	assert.Equal(t, "/v2/entreprise", u.Path)
	assert.Equal(t, "552100554", u.Query().Get("siren"))
}

func TestClient_CompanyInternational(t *testing.T) {
	rec := &recorder{status: http.StatusOK, body: map[string]any{"company_number": "01234567"}}
	c := newTestClient(t, rec)

	_, err := c.CompanyInternational(context.Background(), "gb", "01234567")

	require.NoError(t, err)
	u := rec.last(t)
	assert.Equal(t, "/v1/company", u.Path)
	assert.Equal(t, "UK", u.Query().Get("country_code"))
	assert.Equal(t, "01234567", u.Query().Get("company_number"))
}

func TestClient_SearchHeadquarters(t *testing.T) {
	rec := &recorder{status: http.StatusOK, body: map[string]any{"resultats": []any{}}}
	c := newTestClient(t, rec)

	_, err := c.SearchHeadquarters(context.Background(), domain.LocationQuery{
		StreetAddress: "1 Rue de Rivoli", PostalCode: "75001", City: "Paris 1",
	}, 1, 20)

	require.NoError(t, err)
	u := rec.last(t)
	assert.Equal(t, "/v2/recherche", u.Path)
	q := u.Query()
	assert.Equal(t, `"1 Rue de Rivoli" 75001 Paris`, q.Get("q"))
	assert.Equal(t, "true", q.Get("siege"))
	assert.Equal(t, "exacte", q.Get("precision"))
	assert.Equal(t, searchBases, q.Get("bases"))
}

func TestClient_SearchHeadquartersInternational(t *testing.T) {
	rec := &recorder{status: http.StatusOK, body: map[string]any{"results": []any{}}}
	c := newTestClient(t, rec)

	_, err := c.SearchHeadquartersInternational(context.Background(), domain.LocationQuery{
		StreetAddress: "Bahnhofstrasse 1", PostalCode: "8001", City: "Zürich", CountryCode: "CH",
	}, 1, 20)

	require.NoError(t, err)
	u := rec.last(t)
	assert.Equal(t, "/v1/search", u.Path)
	assert.Equal(t, `"Bahnhofstrasse 1" Zürich`, u.Query().Get("q"))
	assert.Equal(t, "CH", u.Query().Get("country_code"))
}

func TestClient_SearchCompanies(t *testing.T) {
	rec := &recorder{status: http.StatusOK, body: map[string]any{"results": []any{}}}
	c := newTestClient(t, rec)

	_, err := c.SearchCompanies(context.Background(), domain.CompanyQuery{Name: " Acme ", CountryCode: "GB"}, 3, 20)

	require.NoError(t, err)
	u := rec.last(t)
	assert.Equal(t, "/v1/search", u.Path)
	assert.Equal(t, "Acme", u.Query().Get("q"))
	assert.Equal(t, "UK", u.Query().Get("country_code"))
	assert.Equal(t, "3", u.Query().Get("page"))
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
		is     func(error) bool
	}{
		{http.StatusUnauthorized, domain.ErrAuthInvalid, IsUnauthorized},
		{http.StatusNotFound, domain.ErrNotFound, IsNotFound},
		{http.StatusServiceUnavailable, domain.ErrServiceUnavailable, IsUnavailable},
		{http.StatusTooManyRequests, domain.ErrUnknownStatus, IsUnknownStatus},
		{http.StatusInternalServerError, domain.ErrUnknownStatus, IsUnknownStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			rec := &recorder{status: tt.status, body: map[string]any{"error": "nope", "statusCode": tt.status}}
			c := newTestClient(t, rec)

			_, err := c.SearchOfficers(context.Background(), domain.MatchConstraints{FirstName: "Jean", LastName: "Dupont"}, 1, 20)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, tt.is(err))
			assert.True(t, domain.IsTerminal(err))

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "nope", apiErr.Message)
			assert.NotContains(t, apiErr.Error(), "secret-token")
			assert.Contains(t, apiErr.URL, "api_token=REDACTED")
		})
	}
}

func TestClient_LogsFailuresByClass(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusUnauthorized, "API token rejected (status 401)"},
		{http.StatusServiceUnavailable, "registry unavailable"},
		{http.StatusInternalServerError, "unexpected status 500: nope"},
		{http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var buf bytes.Buffer
			logger.SetVerbose(false)
			logger.SetOutput(&buf)
			defer logger.SetOutput(os.Stderr)

			rec := &recorder{status: tt.status, body: map[string]any{"error": "nope", "statusCode": tt.status}}
			c := newTestClient(t, rec)

			_, err := c.SearchOfficers(context.Background(), domain.MatchConstraints{FirstName: "Jean", LastName: "Dupont"}, 1, 20)
			require.Error(t, err)

			if tt.want == "" {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.NotContains(t, buf.String(), "secret-token")
		})
	}
}

func TestClient_MissingToken(t *testing.T) {
	rec := &recorder{status: http.StatusOK, body: map[string]any{}}
	srv := httptest.NewServer(rec)
	t.Cleanup(srv.Close)
	c := NewClient(staticToken(""), Config{FRBaseURL: srv.URL})

	_, err := c.Company(context.Background(), "552100554")

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	assert.Empty(t, rec.requests)
}

func TestClient_CancelledContext(t *testing.T) {
	rec := &recorder{status: http.StatusOK, body: map[string]any{}}
	c := newTestClient(t, rec)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Company(ctx, "552100554")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{FRBaseURL: "http://localhost/v2/"}.withDefaults()

	assert.Equal(t, "http://localhost/v2", cfg.FRBaseURL)
	assert.Equal(t, domain.DefaultINBaseURL, cfg.INBaseURL)
	assert.Equal(t, domain.DefaultTimeout, cfg.Timeout)
}

func TestConfigFromSettings(t *testing.T) {
	cfg := ConfigFromSettings(domain.DefaultSettings())

	assert.Equal(t, domain.DefaultFRBaseURL, cfg.FRBaseURL)
	assert.InDelta(t, domain.DefaultRequestsPerSecond, cfg.RequestsPerSecond, 0.0001)
}

func TestRateLimiter(t *testing.T) {
	assert.Zero(t, NewRateLimiter(0).Limit())
	assert.InDelta(t, 2.0, NewRateLimiter(2).Limit(), 0.0001)

	rl := NewRateLimiter(1000)
	require.NoError(t, rl.Wait(context.Background()))
}

func TestClient_TransportErrorHidesToken(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()
	c := NewClient(staticToken("secret-token"), Config{FRBaseURL: base}, WithRateLimiter(NewRateLimiter(0)))

	_, err := c.Company(context.Background(), "552100554")

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-token")
}
