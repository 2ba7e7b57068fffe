package driven

import (
	"context"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
)

// MessageSeverity grades a user-visible message.
type MessageSeverity string

// Message severities.
const (
	SeverityInform  MessageSeverity = "Inform"
	SeverityWarning MessageSeverity = "PartialError"
	SeverityError   MessageSeverity = "FatalError"
)

// GraphSink receives the output of an enrichment run.
// The core decides what to emit; the sink decides how it is rendered or stored.
type GraphSink interface {
	// AddEntity records one emitted entity together with its link to the query entity.
	AddEntity(ctx context.Context, entity domain.Entity) error

	// AddMessage records a user-visible message.
	AddMessage(ctx context.Context, severity MessageSeverity, text string)
}
