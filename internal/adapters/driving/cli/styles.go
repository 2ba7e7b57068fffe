package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/reflets-cli/internal/core/ports/driven"
)

// Palette for terminal output.
var (
	colourHeader  = lipgloss.Color("#7C3AED")
	colourMuted   = lipgloss.Color("#6C7086")
	colourBorder  = lipgloss.Color("#45475A")
	colourInform  = lipgloss.Color("#06B6D4")
	colourWarning = lipgloss.Color("#F9E2AF")
	colourError   = lipgloss.Color("#F38BA8")
)

// outputStyles are the styles for one output writer. The renderer drops
// colours when the writer is not a colour terminal.
type outputStyles struct {
	renderer *lipgloss.Renderer
	width    int

	Header lipgloss.Style
	Cell   lipgloss.Style
	Muted  lipgloss.Style
	Border lipgloss.Style
}

func newOutputStyles(w io.Writer) *outputStyles {
	r := lipgloss.NewRenderer(w)
	return &outputStyles{
		renderer: r,
		width:    terminalWidth(w),
		Header:   r.NewStyle().Bold(true).Foreground(colourHeader).Padding(0, 1),
		Cell:     r.NewStyle().Padding(0, 1),
		Muted:    r.NewStyle().Foreground(colourMuted),
		Border:   r.NewStyle().Foreground(colourBorder),
	}
}

// link colours an entity's link label with the link's own colour.
func (s *outputStyles) link(label, colour string) lipgloss.Style {
	style := s.Cell
	if colour != "" && label != "" {
		style = style.Foreground(lipgloss.Color(colour))
	}
	return style
}

func (s *outputStyles) severity(sev driven.MessageSeverity) lipgloss.Style {
	switch sev {
	case driven.SeverityError:
		return s.renderer.NewStyle().Bold(true).Foreground(colourError)
	case driven.SeverityWarning:
		return s.renderer.NewStyle().Foreground(colourWarning)
	default:
		return s.renderer.NewStyle().Foreground(colourInform)
	}
}

// terminalWidth returns the width of w when it is a terminal, else zero.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
