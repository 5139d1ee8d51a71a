package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lokeshsukhwal/Dasher/internal/compare"
	"github.com/lokeshsukhwal/Dasher/internal/report"
)

var tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))

// renderDayTable builds the per-day comparison table.
func renderDayTable(results []compare.DayResult) string {
	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{
			r.Day.String(),
			withNotes(r.OldHours, r.OldNotes),
			withNotes(r.NewHours, r.NewNotes),
			statusCell(r.Class),
			r.Category,
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers("Day", "Old", "New", "Status", "Change").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Bold(true)
			}
			return s
		})
	return t.String()
}

func statusCell(c compare.Classification) string {
	switch {
	case c.IsReduction():
		return Error(c.Status())
	case c.IsExtension():
		return Success(c.Status())
	}
	return Silent(c.Status())
}

func withNotes(value string, notes []string) string {
	if len(notes) == 0 {
		return value
	}
	return value + "\n" + Silent("("+strings.Join(notes, "; ")+")")
}

// printResult writes the table, summary and remarks for res.
func printResult(w io.Writer, res report.Result) {
	_, _ = fmt.Fprintf(w, "%s\n", renderDayTable(res.Results))

	s := res.Summary
	summary := fmt.Sprintf("%d reduced, %d extended, %d unchanged", s.ReducedDays, s.ExtendedDays, s.NoChangeDays)
	_, _ = fmt.Fprintf(w, "\n%s %s\n", Heading("Summary:"), Text(summary))
	if s.ShouldFlagForUpdate {
		_, _ = fmt.Fprintf(w, "%s\n", Warning("Hours need to be updated"))
	}

	_, _ = fmt.Fprintf(w, "\n%s\n", Heading("Remarks:"))
	_, _ = fmt.Fprintf(w, "%s\n", res.CopyableRemark)
}
