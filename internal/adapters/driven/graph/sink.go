package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/core/ports/driven"
	"github.com/custodia-labs/reflets-cli/internal/logger"
)

// Ensure Sink implements the interface.
var _ driven.GraphSink = (*Sink)(nil)

// Relationship type linking the query entity to emitted entities.
const relLinked = "LINKED"

// Sink writes emitted entities to a graph database.
//
// Every entity is merged on its label and value, so repeated runs and
// repeated appearances of the same person converge on one node. When an
// origin is set, each entity is also linked to the origin node.
type Sink struct {
	client Client
	origin *domain.Entity
}

// NewSink creates a sink writing through client. origin is the entity the
// run started from; nil writes unlinked nodes.
func NewSink(client Client, origin *domain.Entity) *Sink {
	return &Sink{client: client, origin: origin}
}

// AddEntity merges the entity and its link to the origin.
func (s *Sink) AddEntity(ctx context.Context, entity domain.Entity) error {
	cypher, params := s.statement(entity)
	if _, err := s.client.Write(ctx, cypher, params); err != nil {
		return fmt.Errorf("write %s %q: %w", entity.Kind, entity.Value, err)
	}
	return nil
}

// AddMessage logs the message; the database holds entities only.
func (s *Sink) AddMessage(_ context.Context, severity driven.MessageSeverity, text string) {
	switch severity {
	case driven.SeverityError:
		logger.Error("%s", text)
	case driven.SeverityWarning:
		logger.Warn("%s", text)
	default:
		logger.Info("%s", text)
	}
}

// Linked counts the nodes linked to the origin in either direction.
func (s *Sink) Linked(ctx context.Context) (int, error) {
	if s.origin == nil {
		return 0, nil
	}
	cypher := fmt.Sprintf("MATCH (o:%s {key: $origin})-[:%s]-(n) RETURN count(DISTINCT n) AS linked",
		label(s.origin.Kind), relLinked)
	rows, err := s.client.Read(ctx, cypher, map[string]any{"origin": s.origin.Value})
	if err != nil {
		return 0, fmt.Errorf("count linked nodes: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	switch n := rows[0]["linked"].(type) {
	case int64:
		return int(n), nil
	case int:
		return n, nil
	}
	return 0, nil
}

func (s *Sink) statement(entity domain.Entity) (string, map[string]any) {
	params := map[string]any{
		"key":   entity.Value,
		"props": nodeProperties(entity),
	}

	var b strings.Builder
	if s.origin != nil {
		params["origin"] = s.origin.Value
		params["originProps"] = nodeProperties(*s.origin)
		params["link"] = linkProperties(entity.Link)
		fmt.Fprintf(&b, "MERGE (o:%s {key: $origin}) ON CREATE SET o += $originProps\n", label(s.origin.Kind))
	}
	fmt.Fprintf(&b, "MERGE (n:%s {key: $key}) SET n += $props", label(entity.Kind))
	if s.origin != nil {
		from, to := "o", "n"
		if entity.Link.Reversed {
			from, to = to, from
		}
		fmt.Fprintf(&b, "\nMERGE (%s)-[r:%s]->(%s) SET r += $link", from, relLinked, to)
	}
	return b.String(), params
}

// label turns an entity kind into a quoted node label: reflets.Dirigeant becomes `Dirigeant`.
func label(kind domain.EntityKind) string {
	name := string(kind)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func nodeProperties(e domain.Entity) map[string]any {
	props := make(map[string]any, len(e.Properties)+3)
	var strict []string
	for _, p := range e.Properties {
		props[p.Name] = p.Value
		if p.Matching == domain.MatchStrict {
			strict = append(strict, p.Name)
		}
	}
	props["kind"] = string(e.Kind)
	if len(strict) > 0 {
		props["strict"] = strict
	}
	if e.Note != "" {
		props["note"] = e.Note
	}
	return props
}

func linkProperties(l domain.Link) map[string]any {
	props := map[string]any{"style": styleName(l.Style)}
	if l.Label != "" {
		props["label"] = l.Label
	}
	if l.Color != "" {
		props["color"] = l.Color
	}
	if l.Thickness > 0 {
		props["thickness"] = int64(l.Thickness)
	}
	return props
}

func styleName(s domain.LinkStyle) string {
	switch s {
	case domain.LinkDashed:
		return "dashed"
	case domain.LinkDotted:
		return "dotted"
	case domain.LinkDashDot:
		return "dashdot"
	default:
		return "solid"
	}
}
