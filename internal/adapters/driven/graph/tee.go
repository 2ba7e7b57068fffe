package graph

import (
	"context"
	"errors"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/core/ports/driven"
)

// Ensure Tee implements the interface.
var _ driven.GraphSink = (*Tee)(nil)

// Tee forwards everything to several sinks in order.
type Tee struct {
	sinks []driven.GraphSink
}

// NewTee creates a sink fanning out to sinks. Nil sinks are skipped.
func NewTee(sinks ...driven.GraphSink) *Tee {
	t := &Tee{}
	for _, s := range sinks {
		if s != nil {
			t.sinks = append(t.sinks, s)
		}
	}
	return t
}

// AddEntity forwards the entity to every sink and joins their errors.
func (t *Tee) AddEntity(ctx context.Context, entity domain.Entity) error {
	var errs []error
	for _, s := range t.sinks {
		if err := s.AddEntity(ctx, entity); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// AddMessage forwards the message to every sink.
func (t *Tee) AddMessage(ctx context.Context, severity driven.MessageSeverity, text string) {
	for _, s := range t.sinks {
		s.AddMessage(ctx, severity, text)
	}
}
