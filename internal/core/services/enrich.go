package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/core/ports/driven"
	"github.com/custodia-labs/reflets-cli/internal/core/ports/driving"
	"github.com/custodia-labs/reflets-cli/internal/logger"
)

// Ensure EnrichmentService implements the interface.
var _ driving.EnrichmentService = (*EnrichmentService)(nil)

// Countries served by the international registry.
var (
	internationalAddressCountries = map[string]bool{"CH": true, "UK": true, "GB": true, "BE": true}
	internationalNameCountries    = map[string]bool{"CH": true, "UK": true, "GB": true, "BE": true, "FR": true}
)

// officerSearchCountry is the registry country searched by SearchOfficersInternational.
const officerSearchCountry = "UK"

// EnrichmentService runs the registry enrichment operations.
type EnrichmentService struct {
	registry   driven.Registry
	normaliser driven.SchemaNormaliser
	settings   driving.SettingsService
	filter     MatchFilter
	backfill   BackfillPolicy
}

// EnrichmentOption configures an EnrichmentService.
type EnrichmentOption func(*EnrichmentService)

// WithBackfillPolicy replaces the birth date back-fill. It applies
// regardless of the resolution.backfill setting.
func WithBackfillPolicy(p BackfillPolicy) EnrichmentOption {
	return func(s *EnrichmentService) {
		s.backfill = p
	}
}

// NewEnrichmentService creates a new enrichment service.
func NewEnrichmentService(
	registry driven.Registry,
	normaliser driven.SchemaNormaliser,
	settings driving.SettingsService,
	opts ...EnrichmentOption,
) *EnrichmentService {
	s := &EnrichmentService{
		registry:   registry,
		normaliser: normaliser,
		settings:   settings,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// run is the per-operation state: settings loaded for this run only.
type run struct {
	settings domain.Settings
	pipeline Pipeline
	out      *Emitter
	backfill BackfillPolicy
}

// begin validates the query, loads settings and opens the run report.
func (s *EnrichmentService) begin(operation string, q any, sink driven.GraphSink) (*run, error) {
	report := &domain.RunReport{RunID: uuid.NewString(), Operation: operation}
	if sink == nil {
		return nil, fmt.Errorf("%s: graph sink not configured", operation)
	}
	if s.registry == nil || s.normaliser == nil || s.settings == nil {
		return nil, fmt.Errorf("%s: service not configured", operation)
	}
	if err := validateQuery(q); err != nil {
		return nil, err
	}

	settings, err := s.settings.Load()
	if err != nil {
		return nil, err
	}
	if settings.APIToken == "" {
		return nil, domain.ErrAuthRequired
	}

	r := &run{
		settings: settings,
		pipeline: NewPipeline(settings),
		out:      NewEmitter(sink, report),
		backfill: NoBackfill,
	}
	switch {
	case s.backfill != nil:
		r.backfill = s.backfill
	case settings.Backfill:
		r.backfill = BackfillBirthDate
	}

	logger.Section(operation)
	logger.Debug("run %s: page size %d, page limit %d", report.RunID, settings.PageSize, settings.PageLimit)
	return r, nil
}

// finish turns a run-aborting error into the single user-visible message.
func (s *EnrichmentService) finish(ctx context.Context, r *run, sink driven.GraphSink, err error) (*domain.RunReport, error) {
	report := r.out.Report
	if err != nil {
		sink.AddMessage(ctx, driven.SeverityError, UserMessage(err))
		return report, fmt.Errorf("%s: %w", report.Operation, err)
	}
	if len(report.Failures) > 0 {
		sink.AddMessage(ctx, driven.SeverityWarning, fmt.Sprintf("%d record(s) could not be processed", len(report.Failures)))
	}
	logger.Info("run %s: %d pages, %d seen, %d accepted, %d rejected, %d emitted, stop %s",
		report.RunID, report.Pages, report.Seen, report.Accepted, report.Rejected, report.Emitted, report.Stop)
	return report, nil
}

// failEarly reports an error raised before the run started.
func failEarly(ctx context.Context, operation string, sink driven.GraphSink, err error) (*domain.RunReport, error) {
	if sink != nil {
		sink.AddMessage(ctx, driven.SeverityError, UserMessage(err))
	}
	return &domain.RunReport{Operation: operation, Stop: domain.StopFailed}, fmt.Errorf("%s: %w", operation, err)
}

// admit normalises a person record and applies the match filter.
// The returned identity carries its merge key, after back-fill.
func (s *EnrichmentService) admit(r *run, rec domain.RawRecord, q domain.MatchConstraints) (domain.Identity, bool, error) {
	id, err := s.normaliser.Identity(rec)
	if err != nil {
		return id, false, err
	}
	id.MergeKey = MergeKey(id)
	if !s.filter.Accept(id, q) {
		r.out.Reject()
		return id, false, nil
	}
	id, _ = r.backfill(id, q)
	return id, true, nil
}

func (s *EnrichmentService) person(rec domain.RawRecord) (domain.Entity, error) {
	id, err := s.normaliser.Identity(rec)
	if err != nil {
		return domain.Entity{}, err
	}
	id.MergeKey = MergeKey(id)
	return PersonEntity(id), nil
}

func (s *EnrichmentService) company(rec domain.RawRecord, countryCode string) (domain.Entity, error) {
	c, err := s.normaliser.Company(rec, countryCode)
	if err != nil {
		return domain.Entity{}, err
	}
	return CompanyEntity(c)
}

// office maps an office record to a location entity. Offices without an
// activity of their own take the company's.
func (s *EnrichmentService) office(r *run, rec domain.RawRecord, activity string) (domain.Entity, error) {
	loc, err := s.normaliser.Location(rec)
	if err != nil {
		return domain.Entity{}, err
	}
	if own := rec.Text("libelle_code_naf"); own != "" {
		activity = own
	}
	return LocationEntity(loc, activity, r.settings.DefaultCountryCode)
}

// SearchOfficers finds the companies a person manages in the French registry.
// Each admitted officer yields one company per directorship, then the
// officer's own person entity.
func (s *EnrichmentService) SearchOfficers(ctx context.Context, q domain.MatchConstraints, sink driven.GraphSink) (*domain.RunReport, error) {
	const op = "search_officers"
	r, err := s.begin(op, q, sink)
	if err != nil {
		return failEarly(ctx, op, sink, err)
	}

	fetch := func(ctx context.Context, page int) (domain.RawPage, error) {
		return s.registry.SearchOfficers(ctx, q, page, r.settings.PageSize)
	}
	handle := func(ctx context.Context, rec domain.RawRecord, out *Emitter) error {
		id, ok, err := s.admit(r, rec, q)
		if err != nil || !ok {
			return err
		}
		companies, err := rec.Objects("entreprises")
		if err != nil {
			return err
		}
		err = out.Nested(companies, func(c domain.RawRecord) error {
			entity, err := s.company(c, "FR")
			if err != nil {
				return err
			}
			role, _, _ := c.Object("dirigeant")
			entity.Link = officerLink(role)
			return out.Emit(ctx, entity)
		})
		if err != nil {
			return err
		}
		return out.Emit(ctx, PersonEntity(id))
	}

	return s.finish(ctx, r, sink, r.pipeline.Run(ctx, r.out, fetch, handle))
}

// SearchBeneficiaries finds the companies a person beneficially owns in the
// French registry. Each admitted owner yields one company per holding, then
// the owner's own person entity.
func (s *EnrichmentService) SearchBeneficiaries(ctx context.Context, q domain.MatchConstraints, sink driven.GraphSink) (*domain.RunReport, error) {
	const op = "search_beneficiaries"
	r, err := s.begin(op, q, sink)
	if err != nil {
		return failEarly(ctx, op, sink, err)
	}

	fetch := func(ctx context.Context, page int) (domain.RawPage, error) {
		return s.registry.SearchBeneficiaries(ctx, q, page, r.settings.PageSize)
	}
	handle := func(ctx context.Context, rec domain.RawRecord, out *Emitter) error {
		id, ok, err := s.admit(r, rec, q)
		if err != nil || !ok {
			return err
		}
		companies, err := rec.Objects("entreprises")
		if err != nil {
			return err
		}
		err = out.Nested(companies, func(c domain.RawRecord) error {
			entity, err := s.company(c, "FR")
			if err != nil {
				return err
			}
			stake, _, _ := c.Object("beneficiaire")
			entity.Link = beneficiaryLink(stake)
			entity.Link.Reversed = true
			return out.Emit(ctx, entity)
		})
		if err != nil {
			return err
		}
		return out.Emit(ctx, PersonEntity(id))
	}

	return s.finish(ctx, r, sink, r.pipeline.Run(ctx, r.out, fetch, handle))
}

// SearchOfficersInternational finds the UK companies a person is an officer of.
func (s *EnrichmentService) SearchOfficersInternational(ctx context.Context, q domain.MatchConstraints, sink driven.GraphSink) (*domain.RunReport, error) {
	const op = "search_officers_international"
	r, err := s.begin(op, q, sink)
	if err != nil {
		return failEarly(ctx, op, sink, err)
	}

	fetch := func(ctx context.Context, page int) (domain.RawPage, error) {
		return s.registry.SearchOfficersInternational(ctx, q, officerSearchCountry, page, r.settings.PageSize)
	}
	handle := func(ctx context.Context, rec domain.RawRecord, out *Emitter) error {
		if _, ok, err := s.admit(r, rec, q); err != nil || !ok {
			return err
		}
		companies, err := rec.Objects("companies")
		if err != nil {
			return err
		}
		link := internationalOfficerLink(rec)
		return out.Nested(companies, func(c domain.RawRecord) error {
			entity, err := s.company(c, "GB")
			if err != nil {
				return err
			}
			entity.Link = link
			return out.Emit(ctx, entity)
		})
	}

	return s.finish(ctx, r, sink, r.pipeline.Run(ctx, r.out, fetch, handle))
}

// CompanyDetails expands a company into its people, offices and documents.
// French companies are read from the French registry, others from the
// international one.
func (s *EnrichmentService) CompanyDetails(ctx context.Context, q domain.CompanyQuery, sink driven.GraphSink) (*domain.RunReport, error) {
	const op = "company_details"
	if strings.TrimSpace(q.ID) == "" {
		return failEarly(ctx, op, sink, fmt.Errorf("%w: company number is required", domain.ErrInvalidInput))
	}
	r, err := s.begin(op, q, sink)
	if err != nil {
		return failEarly(ctx, op, sink, err)
	}

	country := strings.ToUpper(q.CountryCode)
	if country == "" || country == "FR" {
		fetch := func(ctx context.Context) (domain.RawRecord, error) {
			return s.registry.Company(ctx, q.ID)
		}
		return s.finish(ctx, r, sink, r.pipeline.RunSingle(ctx, r.out, fetch, s.frCompanyHandler(r)))
	}

	fetch := func(ctx context.Context) (domain.RawRecord, error) {
		return s.registry.CompanyInternational(ctx, country, q.ID)
	}
	return s.finish(ctx, r, sink, r.pipeline.RunSingle(ctx, r.out, fetch, s.inCompanyHandler(r, country)))
}

func (s *EnrichmentService) frCompanyHandler(r *run) ItemHandler {
	return func(ctx context.Context, rec domain.RawRecord, out *Emitter) error {
		activity := rec.Text("libelle_code_naf")

		owners, err := rec.Objects("beneficiaires_effectifs")
		if err != nil {
			return err
		}
		err = out.Nested(owners, func(b domain.RawRecord) error {
			entity, err := s.person(b)
			if err != nil {
				return err
			}
			entity.Link = beneficiaryLink(b)
			return out.Emit(ctx, entity)
		})
		if err != nil {
			return err
		}

		representatives, err := rec.Objects("representants")
		if err != nil {
			return err
		}
		err = out.Nested(representatives, func(rep domain.RawRecord) error {
			var entity domain.Entity
			var err error
			if rep.Bool("personne_morale") {
				entity, err = s.company(rep, "FR")
			} else {
				entity, err = s.person(rep)
			}
			if err != nil {
				return err
			}
			entity.Link = representativeLink(rep)
			return out.Emit(ctx, entity)
		})
		if err != nil {
			return err
		}

		if head, ok, err := rec.Object("siege"); err != nil {
			return err
		} else if ok {
			err := out.Nested([]domain.RawRecord{head}, func(h domain.RawRecord) error {
				entity, err := s.office(r, h, activity)
				if err != nil {
					return err
				}
				entity.Link = headquartersLink(h)
				return out.Emit(ctx, entity)
			})
			if err != nil {
				return err
			}
		}

		establishments, err := rec.Objects("etablissements")
		if err != nil {
			return err
		}
		err = out.Nested(establishments, func(e domain.RawRecord) error {
			entity, err := s.office(r, e, activity)
			if err != nil {
				return err
			}
			entity.Link = establishmentLink(e)
			return out.Emit(ctx, entity)
		})
		if err != nil {
			return err
		}

		self, err := s.company(rec, "FR")
		if err != nil {
			return err
		}
		self.Note = frCompanyNote(self.Value, rec)
		return out.Emit(ctx, self)
	}
}

func (s *EnrichmentService) inCompanyHandler(r *run, country string) ItemHandler {
	return func(ctx context.Context, rec domain.RawRecord, out *Emitter) error {
		activity := rec.Text("purpose")

		officers, err := rec.Objects("officers")
		if err != nil {
			return err
		}
		err = out.Nested(officers, func(o domain.RawRecord) error {
			var entity domain.Entity
			var err error
			if o.Text("company_name") != "" {
				entity, err = s.company(o, country)
			} else {
				entity, err = s.person(o)
			}
			if err != nil {
				return err
			}
			entity.Link = companyOfficerLink(o)
			return out.Emit(ctx, entity)
		})
		if err != nil {
			return err
		}

		ubos, err := rec.Objects("ubos")
		if err != nil {
			return err
		}
		err = out.Nested(ubos, func(u domain.RawRecord) error {
			var entity domain.Entity
			var err error
			// The registry does not tell people from companies; only
			// people have a date of birth.
			if u.Has("date_of_birth") {
				entity, err = s.person(u)
			} else {
				owner := domain.RawRecord{}
				for k, v := range u {
					owner[k] = v
				}
				owner["name"] = u["last_name"]
				entity, err = s.company(owner, country)
			}
			if err != nil {
				return err
			}
			entity.Link = uboLink(u)
			return out.Emit(ctx, entity)
		})
		if err != nil {
			return err
		}

		if head, ok, err := rec.Object("head_office"); err != nil {
			return err
		} else if ok {
			err := out.Nested([]domain.RawRecord{head}, func(h domain.RawRecord) error {
				entity, err := s.office(r, h, activity)
				if err != nil {
					return err
				}
				entity.Link = headOfficeLink()
				return out.Emit(ctx, entity)
			})
			if err != nil {
				return err
			}
		}

		self, err := s.company(rec, country)
		if err != nil {
			return err
		}
		self.Note = inCompanyNote(rec)
		return out.Emit(ctx, self)
	}
}

// SearchHeadquarters finds the companies registered at an address. Swiss,
// British and Belgian addresses go to the international registry, every
// other address to the French one.
func (s *EnrichmentService) SearchHeadquarters(ctx context.Context, q domain.LocationQuery, sink driven.GraphSink) (*domain.RunReport, error) {
	const op = "search_headquarters"
	r, err := s.begin(op, q, sink)
	if err != nil {
		return failEarly(ctx, op, sink, err)
	}

	country := strings.ToUpper(q.CountryCode)
	international := internationalAddressCountries[country]

	fetch := func(ctx context.Context, page int) (domain.RawPage, error) {
		if international {
			return s.registry.SearchHeadquartersInternational(ctx, q, page, r.settings.PageSize)
		}
		return s.registry.SearchHeadquarters(ctx, q, page, r.settings.PageSize)
	}
	handle := func(ctx context.Context, rec domain.RawRecord, out *Emitter) error {
		docsKey, dateKey, companyCountry := "documents", "date_depot", "FR"
		if international {
			docsKey, dateKey, companyCountry = "publications", "date", country
		}
		entity, err := s.company(rec, companyCountry)
		if err != nil {
			return err
		}
		docs, err := rec.Objects(docsKey)
		if err != nil {
			return err
		}
		entity.Link = mentionLink(docs, dateKey)
		entity.Note = mentionNote(docs, dateKey)
		return out.Emit(ctx, entity)
	}

	return s.finish(ctx, r, sink, r.pipeline.Run(ctx, r.out, fetch, handle))
}

// SearchCompanies finds companies by name in the international registry.
func (s *EnrichmentService) SearchCompanies(ctx context.Context, q domain.CompanyQuery, sink driven.GraphSink) (*domain.RunReport, error) {
	const op = "search_companies"
	if strings.TrimSpace(q.Name) == "" {
		return failEarly(ctx, op, sink, fmt.Errorf("%w: company name is required", domain.ErrInvalidInput))
	}
	country := strings.ToUpper(q.CountryCode)
	if country == "" {
		country = "FR"
	}
	if !internationalNameCountries[country] {
		return failEarly(ctx, op, sink, fmt.Errorf("%w: %s", domain.ErrUnsupportedCountry, country))
	}
	q.CountryCode = country

	r, err := s.begin(op, q, sink)
	if err != nil {
		return failEarly(ctx, op, sink, err)
	}

	fetch := func(ctx context.Context, page int) (domain.RawPage, error) {
		return s.registry.SearchCompanies(ctx, q, page, r.settings.PageSize)
	}
	handle := func(ctx context.Context, rec domain.RawRecord, out *Emitter) error {
		entity, err := s.company(rec, country)
		if err != nil {
			return err
		}
		return out.Emit(ctx, entity)
	}

	return s.finish(ctx, r, sink, r.pipeline.Run(ctx, r.out, fetch, handle))
}
