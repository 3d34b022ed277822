package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jonwraymond/toolcheck/check"
)

var stateStyles = map[check.State]lipgloss.Style{
	check.StateOK:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true), // Green
	check.StateWarn:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true), // Yellow
	check.StateCrit:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),  // Red
	check.StateUnknown: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true),  // Gray
}

// Table writes coll as a styled table with one row per entry, followed by
// the overall state and headline.
func Table(w io.Writer, title string, coll check.Collection) error {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("62")).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	if title != "" {
		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
		fmt.Fprintln(w, titleStyle.Render(title))
		fmt.Fprintln(w, strings.Repeat("═", 60))
	}

	entries := coll.Entries()
	rows := make([][]string, len(entries))
	for i, e := range entries {
		perf := ""
		if e.Perf != nil {
			perf = e.Perf.String()
		}
		rows[i] = []string{
			stateStyles[e.State].Render(e.State.String()),
			e.Output.Text,
			perf,
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("STATE", "TEXT", "PERF").
		Rows(rows...)

	if _, err := fmt.Fprintln(w, t); err != nil {
		return err
	}

	state := coll.State()
	line := stateStyles[state].Render(state.String())
	if s := coll.Summary(); s != "" {
		line += " - " + s
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
