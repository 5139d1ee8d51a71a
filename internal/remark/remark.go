package remark

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lokeshsukhwal/Dasher/internal/compare"
	"github.com/lokeshsukhwal/Dasher/internal/hours"
)

// NoChangeText is the body used when nothing differs.
const NoChangeText = "No change in hours."

// Kind groups remarks for display.
type Kind string

const (
	KindReduced  Kind = "reduced"
	KindExtended Kind = "extended"
	KindBlank    Kind = "blank"
	KindNoChange Kind = "noChange"
)

// Priorities, lowest first.
const (
	PriorityReduced  = 1
	PriorityExtended = 2
	PriorityBlank    = 3
	PriorityNoChange = 4
)

// Remark is one entry of the final report.
type Remark struct {
	Title          string `json:"title"`
	Body           string `json:"remark"`
	Kind           Kind   `json:"type"`
	ActionRequired bool   `json:"actionRequired"`
	Priority       int    `json:"priority"`
}

var reducedTitles = map[compare.Classification]string{
	compare.ClosedFromOpen:   "Hours Change (Closed Now)",
	compare.OpenStartReduced: "Hours Change (Start Time Reduced)",
	compare.CloseEndReduced:  "Hours Change (End Time Reduced)",
	compare.FullRangeReduced: "Hours Change (Full Time Reduced)",
}

var extendedTitles = map[compare.Classification]string{
	compare.OpenStartExtended:     "Extended Hours Open Time",
	compare.CloseEndExtended:      "Extended Hours END Time",
	compare.FullRangeExtended:     "Extended Hours FULL Time",
	compare.OpenedFromClosed:      "Open Now (Closed on MINT)",
	compare.OpenedFromUnspecified: "For Blank MINT / If no Hours given on MINT",
}

// Generator renders grouped changes into remarks.
type Generator struct {
	// WeekStart seeds day-range rotation, Monday by default.
	WeekStart hours.Day
}

// Generate renders remarks with a Monday-first week.
func Generate(grouped compare.GroupedChanges, summary compare.Summary) []Remark {
	return Generator{WeekStart: hours.Monday}.Generate(grouped, summary)
}

// Generate returns remarks sorted by priority: one action-required entry per
// reduction bucket, one informational entry per extension bucket, and the
// no-change entry only when neither produced anything.
func (g Generator) Generate(grouped compare.GroupedChanges, summary compare.Summary) []Remark {
	var remarks []Remark

	for _, c := range compare.Classifications {
		groups := grouped[c]
		if len(groups) == 0 {
			continue
		}
		switch {
		case c.IsReduction():
			remarks = append(remarks, g.reduced(c, groups))
		case c.IsExtension():
			remarks = append(remarks, g.extended(c, groups))
		}
	}

	if len(remarks) == 0 && !summary.HasReduction && !summary.HasExtension {
		remarks = append(remarks, Remark{
			Title:    "Hours Found No Change",
			Body:     NoChangeText,
			Kind:     KindNoChange,
			Priority: PriorityNoChange,
		})
	}

	sort.SliceStable(remarks, func(i, j int) bool {
		return remarks[i].Priority < remarks[j].Priority
	})
	return remarks
}

func (g Generator) days(days []hours.Day) string {
	return hours.FormatDayRangeFrom(days, g.WeekStart)
}

func (g Generator) reduced(c compare.Classification, groups []compare.DayGroup) Remark {
	lines := make([]string, len(groups))
	for i, grp := range groups {
		lines[i] = g.reducedLine(c, grp)
	}

	body := "Hours Change: " + lines[0]
	if len(lines) > 1 {
		body = "Hours Change:\n\t" + strings.Join(lines, "\n\t")
	}

	return Remark{
		Title:          reducedTitles[c],
		Body:           body,
		Kind:           KindReduced,
		ActionRequired: true,
		Priority:       PriorityReduced,
	}
}

func (g Generator) reducedLine(c compare.Classification, grp compare.DayGroup) string {
	days := g.days(grp.Days)
	switch c {
	case compare.ClosedFromOpen:
		return fmt.Sprintf("%s is now Closed (was %s)", days, grp.Old)
	case compare.OpenStartReduced:
		return fmt.Sprintf("%s (Opening Time): From %s to %s", days, grp.Old, grp.New)
	case compare.CloseEndReduced:
		return fmt.Sprintf("%s (End Time): From %s to %s", days, grp.Old, grp.New)
	}
	return fmt.Sprintf("%s (Full Day): From (%s) to (%s)", days, grp.Old, grp.New)
}

func (g Generator) extended(c compare.Classification, groups []compare.DayGroup) Remark {
	clauses := make([]string, len(groups))
	for i, grp := range groups {
		clauses[i] = g.extendedClause(c, grp)
	}

	r := Remark{
		Title:    extendedTitles[c],
		Body:     fmt.Sprintf("Differing Hours (Not Changing): %s. Not changing, as this would extend store hours.", strings.Join(clauses, "; ")),
		Kind:     KindExtended,
		Priority: PriorityExtended,
	}
	if c == compare.OpenedFromUnspecified {
		r.Kind = KindBlank
		r.Priority = PriorityBlank
	}
	return r
}

func (g Generator) extendedClause(c compare.Classification, grp compare.DayGroup) string {
	days := g.days(grp.Days)
	switch c {
	case compare.OpenStartExtended:
		return fmt.Sprintf("GMB shows that %s open time is %s (we have %s)", days, grp.New, grp.Old)
	case compare.CloseEndExtended:
		return fmt.Sprintf("GMB shows that %s end time is %s (we have %s)", days, grp.New, grp.Old)
	case compare.OpenedFromUnspecified:
		return fmt.Sprintf("GMB shows that %s full time is %s (we have no hours)", days, grp.New)
	}
	return fmt.Sprintf("GMB shows that %s full time is %s (we have %s)", days, grp.New, grp.Old)
}

// CopyBlock joins remarks into one paste-ready block, each as
// "<title>:\nRemark: <body>", separated by a blank line.
func CopyBlock(remarks []Remark) string {
	if len(remarks) == 0 {
		return NoChangeText
	}
	parts := make([]string, len(remarks))
	for i, r := range remarks {
		parts[i] = fmt.Sprintf("%s:\nRemark: %s", r.Title, r.Body)
	}
	return strings.Join(parts, "\n\n")
}

// Quick returns only the action-required bodies, or the first informational
// body when nothing needs action.
func Quick(remarks []Remark) string {
	var action []string
	for _, r := range remarks {
		if r.ActionRequired {
			action = append(action, r.Body)
		}
	}
	if len(action) > 0 {
		return strings.Join(action, "\n\n")
	}
	if len(remarks) > 0 {
		return remarks[0].Body
	}
	return NoChangeText
}
