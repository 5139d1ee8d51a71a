package hours

import (
	"fmt"
	"strings"
)

// FullWeek is the range string used when every day of the week is listed.
const FullWeek = "Mon–Sun"

// FormatMinutes converts minutes of day to "H:MM AM/PM".
func FormatMinutes(minutes int) string {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	h, m := minutes/60, minutes%60

	suffix := "AM"
	display := h
	if h == 0 {
		display = 12
	} else if h == 12 {
		suffix = "PM"
	} else if h > 12 {
		display = h - 12
		suffix = "PM"
	}

	return fmt.Sprintf("%d:%02d %s", display, m, suffix)
}

// FormatTimeRange formats two minutes-of-day values as "H:MM AM - H:MM PM".
func FormatTimeRange(open, close int) string {
	return fmt.Sprintf("%s - %s", FormatMinutes(open), FormatMinutes(close))
}

// FormatDayRange compresses a set of days into the shortest description,
// e.g. "Mon–Fri" or "Mon, Wed, Fri". Every rotation of the Monday-first week
// is tried and the one needing the fewest contiguous runs wins, earliest
// rotation on ties. All seven days give FullWeek.
func FormatDayRange(days []Day) string {
	return FormatDayRangeFrom(days, Monday)
}

// FormatDayRangeFrom is FormatDayRange with rotations counted from start.
// A full week is FullWeek whatever the start.
func FormatDayRangeFrom(days []Day, start Day) string {
	var set [DaysInWeek]bool
	count := 0
	for _, d := range days {
		if d.Valid() && !set[d] {
			set[d] = true
			count++
		}
	}

	if count == 0 {
		return ""
	}
	if count == DaysInWeek {
		return FullWeek
	}
	week := Week(start)

	var best [][2]Day
	for r := 0; r < DaysInWeek; r++ {
		runs := dayRuns(rotate(week, r), set)
		if best == nil || len(runs) < len(best) {
			best = runs
		}
	}

	parts := make([]string, len(best))
	for i, run := range best {
		if run[0] == run[1] {
			parts[i] = run[0].Short()
		} else {
			parts[i] = run[0].Short() + "–" + run[1].Short()
		}
	}
	return strings.Join(parts, ", ")
}

func rotate(week []Day, n int) []Day {
	out := make([]Day, 0, len(week))
	out = append(out, week[n:]...)
	return append(out, week[:n]...)
}

// dayRuns returns the contiguous runs of member days in order.
func dayRuns(order []Day, set [DaysInWeek]bool) [][2]Day {
	var runs [][2]Day
	inRun := false
	for _, d := range order {
		if !set[d] {
			inRun = false
			continue
		}
		if inRun {
			runs[len(runs)-1][1] = d
		} else {
			runs = append(runs, [2]Day{d, d})
			inRun = true
		}
	}
	return runs
}
