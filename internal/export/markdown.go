// Package export renders a comparison result as Markdown, HTML or PDF.
package export

import (
	"fmt"
	"strings"

	"github.com/lokeshsukhwal/Dasher/internal/report"
)

// Title heads every exported document.
const Title = "Operating Hours Comparison"

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

// Markdown renders res as a GFM document: summary, day table, remarks.
func Markdown(res report.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", Title)

	s := res.Summary
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Reduced days: %d\n", s.ReducedDays)
	fmt.Fprintf(&b, "- Extended days: %d\n", s.ExtendedDays)
	fmt.Fprintf(&b, "- Unchanged days: %d\n", s.NoChangeDays)
	if s.ShouldFlagForUpdate {
		b.WriteString("- **Update required**\n")
	}
	b.WriteString("\n")

	b.WriteString("## Days\n\n")
	b.WriteString("| Day | Old | New | Status | Change |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, r := range res.Results {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			r.Day, cell(r.OldHours, r.OldNotes), cell(r.NewHours, r.NewNotes), r.Status, r.Category)
	}
	b.WriteString("\n")

	b.WriteString("## Remarks\n\n")
	for _, rm := range res.Remarks {
		fmt.Fprintf(&b, "### %s\n\n", rm.Title)
		for _, line := range strings.Split(rm.Body, "\n") {
			fmt.Fprintf(&b, "%s\n", strings.TrimSpace(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func cell(value string, notes []string) string {
	if len(notes) > 0 {
		value += " (" + strings.Join(notes, "; ") + ")"
	}
	return cellEscaper.Replace(value)
}
