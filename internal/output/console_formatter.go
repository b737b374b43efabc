package output

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// ConsoleFormatter renders the markdown report for a terminal with glamour.
// The zero value uses the plain "notty" style so output is stable in pipes
// and tests; set Style to "auto" (or "dark", "light") for an interactive tty.
type ConsoleFormatter struct {
	Style    string
	WordWrap int
}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	if report.Empty() {
		return nil, ErrEmptyReport
	}
	style := c.Style
	if style == "" {
		style = styles.NoTTYStyle
	}
	wrap := c.WordWrap
	if wrap <= 0 {
		wrap = 100
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal renderer: %w", err)
	}
	out, err := r.Render(reportMarkdown(report))
	if err != nil {
		return nil, fmt.Errorf("failed to render console report: %w", err)
	}
	return []byte(out), nil
}
