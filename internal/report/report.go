// Package report runs the full comparison pipeline over two raw texts.
package report

import (
	"errors"
	"strings"

	"github.com/lokeshsukhwal/Dasher/internal/compare"
	"github.com/lokeshsukhwal/Dasher/internal/hours"
	"github.com/lokeshsukhwal/Dasher/internal/remark"
)

// ErrMissingInput is returned when either side of a comparison is blank.
var ErrMissingInput = errors.New("both old and new hours are required")

// Options configure a single pipeline run.
type Options struct {
	ToleranceMinutes int
	WeekStart        hours.Day
	OldDialect       hours.Dialect
	NewDialect       hours.Dialect
}

// DefaultOptions reads the old side as compact lines and the new side as a
// free-text listing.
func DefaultOptions() Options {
	return Options{
		ToleranceMinutes: compare.DefaultTolerance,
		WeekStart:        hours.Monday,
		OldDialect:       hours.Compact,
		NewDialect:       hours.FreeText,
	}
}

// Result is everything a caller needs to render a comparison.
type Result struct {
	Results        []compare.DayResult    `json:"results"`
	Grouped        compare.GroupedChanges `json:"groupedChanges"`
	Summary        compare.Summary        `json:"summary"`
	Remarks        []remark.Remark        `json:"remarks"`
	CopyableRemark string                 `json:"copyableRemark"`
	QuickRemark    string                 `json:"quickRemark"`
}

// Validate reports ErrMissingInput when either text is blank.
func Validate(oldText, newText string) error {
	if strings.TrimSpace(oldText) == "" || strings.TrimSpace(newText) == "" {
		return ErrMissingInput
	}
	return nil
}

// Build parses both texts and produces the full result. It never fails;
// unparseable days are treated as unspecified.
func Build(oldText, newText string, opts Options) Result {
	oldSchedule := hours.Parse(oldText, opts.OldDialect)
	newSchedule := hours.Parse(newText, opts.NewDialect)

	results := compare.Week(oldSchedule, newSchedule, compare.Options{
		ToleranceMinutes: opts.ToleranceMinutes,
		WeekStart:        opts.WeekStart,
	})
	grouped := compare.Group(results)
	summary := compare.Summarize(results)
	remarks := remark.Generator{WeekStart: opts.WeekStart}.Generate(grouped, summary)

	return Result{
		Results:        results,
		Grouped:        grouped,
		Summary:        summary,
		Remarks:        remarks,
		CopyableRemark: remark.CopyBlock(remarks),
		QuickRemark:    remark.Quick(remarks),
	}
}
