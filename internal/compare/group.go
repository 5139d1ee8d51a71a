package compare

import "github.com/lokeshsukhwal/Dasher/internal/hours"

// DayGroup is a set of days sharing one classification and the exact same
// before/after display values.
type DayGroup struct {
	Old  string      `json:"old"`
	New  string      `json:"new"`
	Days []hours.Day `json:"days"`
}

// GroupedChanges partitions a week's results by classification. Groups keep
// first-seen order and their days keep week order; every day appears in
// exactly one group.
type GroupedChanges map[Classification][]DayGroup

// Group partitions results by classification, then by (old, new) display pair.
func Group(results []DayResult) GroupedChanges {
	grouped := make(GroupedChanges)
	for _, r := range results {
		groups := grouped[r.Class]
		found := false
		for i := range groups {
			if groups[i].Old == r.Old && groups[i].New == r.New {
				groups[i].Days = append(groups[i].Days, r.Day)
				found = true
				break
			}
		}
		if !found {
			groups = append(groups, DayGroup{Old: r.Old, New: r.New, Days: []hours.Day{r.Day}})
		}
		grouped[r.Class] = groups
	}
	return grouped
}

// Days returns every day classified as c, in week order of first appearance
// across groups.
func (g GroupedChanges) Days(c Classification) []hours.Day {
	var days []hours.Day
	for _, grp := range g[c] {
		days = append(days, grp.Days...)
	}
	return days
}

// Count returns the number of days classified as c.
func (g GroupedChanges) Count(c Classification) int {
	n := 0
	for _, grp := range g[c] {
		n += len(grp.Days)
	}
	return n
}

// Summary aggregates a week's results.
type Summary struct {
	TotalDays           int                    `json:"totalDays"`
	Counts              map[Classification]int `json:"counts"`
	ReducedDays         int                    `json:"reducedDays"`
	ExtendedDays        int                    `json:"extendedDays"`
	NoChangeDays        int                    `json:"noChangeDays"`
	ClosedNowDays       int                    `json:"closedNowDays"`
	OpenNowDays         int                    `json:"openNowDays"`
	HasReduction        bool                   `json:"hasReduction"`
	HasExtension        bool                   `json:"hasExtension"`
	ShouldFlagForUpdate bool                   `json:"shouldFlagForUpdate"`
}

// Summarize counts results per classification. A week with any reduction
// or closure is flagged for update.
func Summarize(results []DayResult) Summary {
	s := Summary{
		TotalDays: len(results),
		Counts:    make(map[Classification]int, len(Classifications)),
	}
	for _, c := range Classifications {
		s.Counts[c] = 0
	}

	for _, r := range results {
		s.Counts[r.Class]++
		switch {
		case r.Class.IsReduction():
			s.ReducedDays++
		case r.Class.IsExtension():
			s.ExtendedDays++
		default:
			s.NoChangeDays++
		}
	}

	s.ClosedNowDays = s.Counts[ClosedFromOpen]
	s.OpenNowDays = s.Counts[OpenedFromClosed]
	s.HasReduction = s.ReducedDays > 0
	s.HasExtension = s.ExtendedDays > 0
	s.ShouldFlagForUpdate = s.HasReduction
	return s
}
