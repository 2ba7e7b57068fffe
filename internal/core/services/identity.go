package services

import (
	"strings"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/logger"
)

// MergeKey computes the identifier that merges appearances of the same
// person: first name, last name and, when known, the birth month.
// Two identities with equal merge keys are the same graph node.
func MergeKey(id domain.Identity) string {
	key := id.FirstName + " " + id.LastName
	if id.BirthMonth != "" {
		key += " " + id.BirthMonth
	}
	return key
}

// BackfillPolicy may complete an identity from the query that found it.
// It returns the possibly updated identity and whether it changed.
type BackfillPolicy func(id domain.Identity, q domain.MatchConstraints) (domain.Identity, bool)

// NoBackfill leaves identities untouched.
func NoBackfill(id domain.Identity, _ domain.MatchConstraints) (domain.Identity, bool) {
	return id, false
}

// BackfillBirthDate copies the searched birth date onto a record that has
// no day-precision birth date of its own when its birth month equals the
// searched birth month, and the searched birth date falls in that month.
// The merge key is recomputed afterwards.
func BackfillBirthDate(id domain.Identity, q domain.MatchConstraints) (domain.Identity, bool) {
	if id.HasBirthDate() || !id.HasBirthMonth() || q.BirthDate == "" || q.BirthMonth == "" {
		return id, false
	}
	month := canonicalMonth(q.BirthMonth)
	if id.BirthMonth != month || canonicalMonth(monthOf(q.BirthDate)) != month {
		return id, false
	}

	id.BirthDate = q.BirthDate
	id.MergeKey = MergeKey(id)
	logger.Info("copied searched birth date %s onto %s", q.BirthDate, id.MergeKey)
	return id, true
}

// canonicalMonth strips the leading zero after each hyphen: 1970-05 becomes 1970-5.
func canonicalMonth(month string) string {
	return strings.ReplaceAll(strings.TrimSpace(month), "-0", "-")
}

// monthOf returns the YYYY-MM prefix of a YYYY-MM-DD date.
func monthOf(date string) string {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) < 2 {
		return date
	}
	return parts[0] + "-" + parts[1]
}
