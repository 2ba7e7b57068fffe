package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/custodia-labs/reflets-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/reflets-cli/internal/core/domain"
)

// Output formats.
const (
	formatTable   = "table"
	formatJSON    = "json"
	formatMaltego = "maltego"
)

var formats = []string{formatTable, formatJSON, formatMaltego}

func validFormat(f string) bool {
	return slices.Contains(formats, f)
}

// runOutput is the JSON document printed for a run.
type runOutput struct {
	Entities []domain.Entity   `json:"entities"`
	Messages []memory.Message   `json:"messages"`
	Report   *domain.RunReport `json:"report,omitempty"`
}

func render(w io.Writer, format string, sink *memory.GraphSink, report *domain.RunReport) error {
	switch format {
	case formatJSON:
		return renderJSON(w, sink, report)
	case formatMaltego:
		return renderMaltego(w, sink)
	default:
		return renderTable(w, sink, report)
	}
}

func renderJSON(w io.Writer, sink *memory.GraphSink, report *domain.RunReport) error {
	out := runOutput{
		Entities: sink.Entities(),
		Messages: sink.Messages(),
		Report:   report,
	}
	if out.Entities == nil {
		out.Entities = []domain.Entity{}
	}
	if out.Messages == nil {
		out.Messages = []memory.Message{}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderTable(w io.Writer, sink *memory.GraphSink, report *domain.RunReport) error {
	styles := newOutputStyles(w)
	entities := sink.Unique()

	if len(entities) == 0 {
		fmt.Fprintln(w, "No results found.")
	} else {
		links := make([]domain.Link, len(entities))
		rows := make([][]string, len(entities))
		for i, e := range entities {
			links[i] = e.Link
			rows[i] = []string{kindLabel(e.Kind), e.Value, e.Link.Label, summary(e)}
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(styles.Border).
			Headers("Kind", "Value", "Link", "Details").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return styles.Header
				case col == 2 && row >= 0 && row < len(links):
					return styles.link(links[row].Label, links[row].Color)
				default:
					return styles.Cell
				}
			})
		if styles.width > 0 {
			t = t.Width(styles.width)
		}
		fmt.Fprintln(w, t.Render())
	}

	for _, m := range sink.Messages() {
		fmt.Fprintln(w, styles.severity(m.Severity).Render(m.Text))
	}
	if report != nil {
		fmt.Fprintln(w, styles.Muted.Render(reportLine(report)))
	}
	return nil
}

// kindLabel strips the namespace from an entity kind.
func kindLabel(kind domain.EntityKind) string {
	s := string(kind)
	if i := strings.LastIndex(s, "."); i >= 0 {
		return s[i+1:]
	}
	return s
}

// summary lists the strict properties of an entity, which are what
// decide whether two entities merge.
func summary(e domain.Entity) string {
	var parts []string
	for _, p := range e.Properties {
		if p.Matching == domain.MatchStrict {
			parts = append(parts, p.DisplayName+": "+p.Value)
		}
	}
	return strings.Join(parts, ", ")
}

func reportLine(r *domain.RunReport) string {
	line := fmt.Sprintf("%s: %d page(s), %d seen, %d accepted, %d rejected, %d emitted, stop: %s",
		r.Operation, r.Pages, r.Seen, r.Accepted, r.Rejected, r.Emitted, r.Stop)
	if n := len(r.Failures); n > 0 {
		line += fmt.Sprintf(", %d failed", n)
	}
	return line
}
