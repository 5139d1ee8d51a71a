package compare

import (
	"fmt"

	"github.com/lokeshsukhwal/Dasher/internal/hours"
)

// Options tune a week comparison.
type Options struct {
	ToleranceMinutes int
	WeekStart        hours.Day
}

// DefaultOptions returns the 3-minute tolerance and a Monday-first week.
func DefaultOptions() Options {
	return Options{ToleranceMinutes: DefaultTolerance, WeekStart: hours.Monday}
}

// DayResult is the comparison of a single day with its display metadata.
type DayResult struct {
	Day      hours.Day      `json:"day"`
	DayShort string         `json:"dayShort"`
	OldSlot  hours.TimeSlot `json:"oldHours"`
	NewSlot  hours.TimeSlot `json:"newHours"`
	OldHours string         `json:"oldDisplay"`
	NewHours string         `json:"newDisplay"`
	OldNotes []string       `json:"oldNotes,omitempty"`
	NewNotes []string       `json:"newNotes,omitempty"`
	Outcome
	Status   string `json:"status"`
	Category string `json:"changeCategory"`
	Remark   string `json:"dayRemark"`
}

// Week compares both schedules over all seven days after gap-filling them.
// The result always has seven entries in week order starting at
// opts.WeekStart, whatever order the input lines were in.
func Week(oldSchedule, newSchedule hours.Schedule, opts Options) []DayResult {
	oldFull := hours.FillGaps(oldSchedule)
	newFull := hours.FillGaps(newSchedule)

	results := make([]DayResult, 0, hours.DaysInWeek)
	for _, day := range hours.Week(opts.WeekStart) {
		o, n := oldFull[day], newFull[day]
		out := Day(o.Slot, n.Slot, opts.ToleranceMinutes)
		results = append(results, DayResult{
			Day:      day,
			DayShort: day.Short(),
			OldSlot:  o.Slot,
			NewSlot:  n.Slot,
			OldHours: o.Slot.String(),
			NewHours: n.Slot.String(),
			OldNotes: o.Notes,
			NewNotes: n.Notes,
			Outcome:  out,
			Status:   out.Class.Status(),
			Category: out.Class.Category(),
			Remark:   DayRemark(day, out),
		})
	}
	return results
}

// DayRemark renders the one-line remark for a single day, e.g.
// "Monday (Opening Time): From 9:00 AM to 10:00 AM".
func DayRemark(day hours.Day, out Outcome) string {
	d := out.Details
	switch out.Class {
	case ClosedFromOpen:
		return fmt.Sprintf("%s (Status): Now Closed (was %s - %s)", day, d.OldOpen, d.OldClose)
	case OpenedFromClosed:
		return fmt.Sprintf("%s (Status): Now Open %s - %s (was Closed)", day, d.NewOpen, d.NewClose)
	case OpenedFromUnspecified, FullRangeExtended, FullRangeReduced:
		return fmt.Sprintf("%s (Full Day): From (%s) to (%s)", day, out.Old, out.New)
	case OpenStartExtended, OpenStartReduced:
		return fmt.Sprintf("%s (Opening Time): From %s to %s", day, out.Old, out.New)
	case CloseEndExtended, CloseEndReduced:
		return fmt.Sprintf("%s (End Time): From %s to %s", day, out.Old, out.New)
	}
	return "No Change"
}
