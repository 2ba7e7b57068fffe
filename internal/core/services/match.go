package services

import (
	"strings"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/logger"
)

// RejectReason names the check that rejected a record.
type RejectReason string

// Reject reasons, in evaluation order.
const (
	RejectNone  RejectReason = ""
	RejectName  RejectReason = "name"
	RejectMonth RejectReason = "birth_month"
	RejectDate  RejectReason = "birth_date"
	RejectAge   RejectReason = "age"
)

// Decision is the outcome of evaluating one identity.
type Decision struct {
	Accept bool
	Reason RejectReason

	// DateAnomaly is set when the birth months agree but the birth dates
	// differ. The record is still accepted.
	DateAnomaly bool
}

// MatchFilter decides whether a returned person is the person searched for.
//
// Names must always match. Then the first constraint that both sides carry
// decides, in order: birth month, birth date, age. Without any shared
// constraint the record is accepted.
type MatchFilter struct{}

// Evaluate applies the filter without logging.
func (MatchFilter) Evaluate(id domain.Identity, q domain.MatchConstraints) Decision {
	if !sameName(id.FirstName, q.FirstName) || !sameName(id.LastName, q.LastName) {
		return Decision{Reason: RejectName}
	}

	if month := canonicalMonth(q.BirthMonth); month != "" && id.HasBirthMonth() {
		if month != id.BirthMonth {
			return Decision{Reason: RejectMonth}
		}
		anomaly := q.BirthDate != "" && id.HasBirthDate() && q.BirthDate != id.BirthDate
		return Decision{Accept: true, DateAnomaly: anomaly}
	}

	if q.BirthDate != "" && id.HasBirthDate() {
		if q.BirthDate != id.BirthDate {
			return Decision{Reason: RejectDate}
		}
		return Decision{Accept: true}
	}

	if q.Age != nil && id.Age != nil {
		if *q.Age != *id.Age {
			return Decision{Reason: RejectAge}
		}
		return Decision{Accept: true}
	}

	return Decision{Accept: true}
}

// Accept applies the filter and logs why a record was rejected.
func (f MatchFilter) Accept(id domain.Identity, q domain.MatchConstraints) bool {
	d := f.Evaluate(id, q)

	switch d.Reason {
	case RejectName:
		logger.Debug("filtered: names differ: %q %q != %q %q", id.FirstName, id.LastName, q.FirstName, q.LastName)
	case RejectMonth:
		logger.Debug("filtered: birth months differ: %s != %s", q.BirthMonth, id.BirthMonth)
	case RejectDate:
		logger.Debug("filtered: birth dates differ: %s != %s", q.BirthDate, id.BirthDate)
	case RejectAge:
		logger.Debug("filtered: ages differ: %d != %d", *q.Age, *id.Age)
	}
	if d.DateAnomaly {
		logger.Warn("birth months match but birth dates differ, kept: %s != %s (%s)", q.BirthDate, id.BirthDate, MergeKey(id))
	}
	return d.Accept
}

// sameName compares names ignoring case, hyphens and repeated spaces.
func sameName(a, b string) bool {
	return strings.EqualFold(foldName(a), foldName(b))
}

func foldName(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "-", " ")), " ")
}
