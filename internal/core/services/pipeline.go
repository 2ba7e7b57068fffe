package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/core/ports/driven"
	"github.com/custodia-labs/reflets-cli/internal/logger"
)

// PageFetcher fetches one 1-based page of results.
type PageFetcher func(ctx context.Context, page int) (domain.RawPage, error)

// ItemHandler processes one result record, emitting through out.
// A returned error fails that record only, unless it is terminal.
type ItemHandler func(ctx context.Context, item domain.RawRecord, out *Emitter) error

// Pipeline drives a paginated registry search.
type Pipeline struct {
	// PageSize is the number of results requested per page.
	PageSize int

	// PageLimit caps the pages fetched. Zero or less follows the
	// upstream-reported total instead.
	PageLimit int
}

// NewPipeline creates a pipeline from run settings.
func NewPipeline(settings domain.Settings) Pipeline {
	return Pipeline{PageSize: settings.PageSize, PageLimit: settings.PageLimit}
}

// Run fetches pages until the cap is reached, a page comes back empty or,
// without a cap, the upstream total is exhausted. Each item goes through
// handle in isolation: a failing item is recorded in the report and the
// run continues. A terminal error from fetch or handle aborts the run.
func (p Pipeline) Run(ctx context.Context, out *Emitter, fetch PageFetcher, handle ItemHandler) error {
	report := out.Report
	lastPage := 0

	for page := 1; ; page++ {
		if p.PageLimit > 0 && page > p.PageLimit {
			report.Stop = domain.StopPageLimit
			return nil
		}
		if p.PageLimit <= 0 && lastPage > 0 && page > lastPage {
			report.Stop = domain.StopExhausted
			return nil
		}
		if err := ctx.Err(); err != nil {
			report.Stop = domain.StopFailed
			return err
		}

		res, err := fetch(ctx, page)
		if err != nil {
			report.Stop = domain.StopFailed
			return err
		}
		if len(res.Items) == 0 {
			report.Stop = domain.StopEmptyPage
			return nil
		}
		report.Pages++
		logger.Debug("run %s: page %d returned %d of %d results", report.RunID, page, len(res.Items), res.Total)

		if p.PageLimit <= 0 && res.Total > 0 && p.PageSize > 0 {
			lastPage = (res.Total + p.PageSize - 1) / p.PageSize
		}

		out.page = page
		if err := out.Each(ctx, res.Items, handle); err != nil {
			report.Stop = domain.StopFailed
			return err
		}
	}
}

// RunSingle processes a single fetched document through handle.
func (p Pipeline) RunSingle(ctx context.Context, out *Emitter, fetch func(ctx context.Context) (domain.RawRecord, error), handle ItemHandler) error {
	rec, err := fetch(ctx)
	if err != nil {
		out.Report.Stop = domain.StopFailed
		return err
	}
	out.Report.Pages = 1
	out.Report.Stop = domain.StopSingle
	out.page = 1
	if err := out.Each(ctx, []domain.RawRecord{rec}, handle); err != nil {
		out.Report.Stop = domain.StopFailed
		return err
	}
	return nil
}

// Emitter writes entities to a sink and keeps the run report.
type Emitter struct {
	Report *domain.RunReport
	sink   driven.GraphSink
	page   int
}

// NewEmitter creates an emitter for one run.
func NewEmitter(sink driven.GraphSink, report *domain.RunReport) *Emitter {
	return &Emitter{Report: report, sink: sink}
}

// sinkError marks a sink failure; it aborts the run.
type sinkError struct {
	err error
}

func (e *sinkError) Error() string { return "graph sink: " + e.err.Error() }
func (e *sinkError) Unwrap() error { return e.err }

// Emit hands an entity to the sink.
func (e *Emitter) Emit(ctx context.Context, entity domain.Entity) error {
	if err := e.sink.AddEntity(ctx, entity); err != nil {
		return &sinkError{err: err}
	}
	e.Report.Emitted++
	return nil
}

// Reject counts a record turned down by the match filter.
func (e *Emitter) Reject() {
	e.Report.Rejected++
}

// Each runs handle over items, isolating per-item failures.
// Items counted as rejected by handle are not counted as accepted.
func (e *Emitter) Each(ctx context.Context, items []domain.RawRecord, handle ItemHandler) error {
	for i, item := range items {
		e.Report.Seen++
		rejected := e.Report.Rejected
		if err := handle(ctx, item, e); err != nil {
			if isAbort(err) {
				return err
			}
			e.Fail(i, item, err)
			continue
		}
		if e.Report.Rejected == rejected {
			e.Report.Accepted++
		}
	}
	return nil
}

// Fail records a failed record and logs it with its raw content.
func (e *Emitter) Fail(index int, item domain.RawRecord, err error) {
	raw, _ := json.Marshal(item)
	logger.Error("run %s: record %d on page %d failed: %v: %s", e.Report.RunID, index, e.page, err, raw)
	e.Report.Failures = append(e.Report.Failures, domain.RecordFailure{
		Page:   e.page,
		Index:  index,
		Error:  err.Error(),
		Record: item,
	})
}

// Nested runs fn over a record's sub-records, recording failures without
// failing the parent. Sink failures and terminal errors are returned.
func (e *Emitter) Nested(items []domain.RawRecord, fn func(domain.RawRecord) error) error {
	for i, item := range items {
		if err := fn(item); err != nil {
			if isAbort(err) {
				return err
			}
			e.Fail(i, item, fmt.Errorf("nested record: %w", err))
		}
	}
	return nil
}

func isAbort(err error) bool {
	var se *sinkError
	return domain.IsTerminal(err) || errors.As(err, &se) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
