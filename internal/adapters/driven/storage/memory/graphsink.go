package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/core/ports/driven"
)

// Ensure GraphSink implements the interface.
var _ driven.GraphSink = (*GraphSink)(nil)

// Message is a user-visible message recorded by GraphSink.
type Message struct {
	Severity driven.MessageSeverity `json:"severity"`
	Text     string                 `json:"text"`
}

// GraphSink collects emitted entities and messages in memory.
// Output adapters render its contents once a run completes.
type GraphSink struct {
	mu       sync.RWMutex
	entities []domain.Entity
	messages []Message
	err      error
}

// NewGraphSink creates a new in-memory graph sink.
func NewGraphSink() *GraphSink {
	return &GraphSink{}
}

// AddEntity records an entity in emission order.
func (s *GraphSink) AddEntity(_ context.Context, entity domain.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.entities = append(s.entities, entity)
	return nil
}

// AddMessage records a message.
func (s *GraphSink) AddMessage(_ context.Context, severity driven.MessageSeverity, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, Message{Severity: severity, Text: text})
}

// FailWith makes subsequent AddEntity calls return err.
func (s *GraphSink) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Entities returns a copy of the recorded entities.
func (s *GraphSink) Entities() []domain.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// EntitiesOf returns the recorded entities of one kind.
func (s *GraphSink) EntitiesOf(kind domain.EntityKind) []domain.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Entity
	for _, e := range s.entities {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Unique returns the recorded entities merged by Key, in order of first
// appearance. Later properties replace earlier ones; the first non-empty
// note and link are kept.
func (s *GraphSink) Unique() []domain.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index := make(map[string]int, len(s.entities))
	var out []domain.Entity
	for _, e := range s.entities {
		i, seen := index[e.Key()]
		if !seen {
			index[e.Key()] = len(out)
			e.Properties = append([]domain.Property(nil), e.Properties...)
			out = append(out, e)
			continue
		}
		merged := &out[i]
		for _, p := range e.Properties {
			merged.Set(p.Name, p.DisplayName, p.Matching, p.Value)
		}
		if merged.Note == "" {
			merged.Note = e.Note
		}
		if merged.Link == (domain.Link{}) {
			merged.Link = e.Link
		}
	}
	return out
}

// Messages returns a copy of the recorded messages.
func (s *GraphSink) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Reset discards everything recorded.
func (s *GraphSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities = nil
	s.messages = nil
}
