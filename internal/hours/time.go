package hours

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	blankTokens = map[string]bool{"": true, "-": true, "n/a": true, "na": true, "blank": true, "none": true}

	allDayMarkers = []string{"24 hours", "24 hrs", "24hours", "24hrs", "24/7"}

	// 9:00 AM – 10:00 PM, 9am-5pm, 9 to 5, 9to5, 9.30 a.m. — 6 p.m.
	timeRangePattern = regexp.MustCompile(
		`(?i)(\d{1,2})(?:[:.](\d{2}))?\s*([ap])?(?:\.?\s?m\.?)?\s*(?:-+|–|—|to)\s*` +
			`(\d{1,2})(?:[:.](\d{2}))?\s*([ap])?(?:\.?\s?m\.?)?`)
)

// ParseTimeSlot turns a free-text time expression into a TimeSlot. It never
// fails: anything it cannot read is Unspecified.
//
// Rules, first match wins: blank tokens, anything containing "closed",
// the 24-hour markers, then a two-endpoint range. A missing close period is
// PM; a missing open period is AM for 6-11, PM for 12 and AM otherwise.
func ParseTimeSlot(s string) TimeSlot {
	cleaned := strings.TrimSpace(normalizeSpace(s))
	lower := strings.ToLower(cleaned)

	if blankTokens[lower] {
		return Unspecified()
	}

	if strings.Contains(lower, "closed") {
		return Closed()
	}

	for _, marker := range allDayMarkers {
		if strings.Contains(lower, marker) {
			return OpenAllDay()
		}
	}

	if m := timeRangePattern.FindStringSubmatch(cleaned); m != nil {
		if slot, ok := rangeFromMatch(m); ok {
			return slot
		}
	}

	return Unspecified()
}

func rangeFromMatch(m []string) (TimeSlot, bool) {
	openHour, _ := strconv.Atoi(m[1])
	closeHour, _ := strconv.Atoi(m[4])

	closePeriod := strings.ToLower(m[6])
	if closePeriod == "" {
		closePeriod = "p"
	}

	openPeriod := strings.ToLower(m[3])
	if openPeriod == "" {
		openPeriod = inferOpenPeriod(openHour)
	}

	open, ok := toMinutes(openHour, m[2], openPeriod)
	if !ok {
		return TimeSlot{}, false
	}
	close, ok := toMinutes(closeHour, m[5], closePeriod)
	if !ok {
		return TimeSlot{}, false
	}

	slot, err := Range(open, close)
	if err != nil {
		return TimeSlot{}, false
	}
	return slot, true
}

// inferOpenPeriod guesses the period of an open endpoint written without one.
// This misreads late-night openings such as "11-2"; remark text depends on
// the guess so it stays as is.
func inferOpenPeriod(hour int) string {
	switch {
	case hour >= 6 && hour <= 11:
		return "a"
	case hour == 12:
		return "p"
	default:
		return "a"
	}
}

// toMinutes converts a clock endpoint to minutes of day. The period applies
// to hours 1-12 only; 0 and 13-23 are read as 24-hour clock values.
func toMinutes(hour int, minStr, period string) (int, bool) {
	minute := 0
	if minStr != "" {
		minute, _ = strconv.Atoi(minStr)
	}

	if hour > 23 || minute > 59 {
		return 0, false
	}

	if hour >= 1 && hour <= 12 {
		if period == "a" {
			if hour == 12 {
				hour = 0
			}
		} else if hour != 12 {
			hour += 12
		}
	}

	return hour*60 + minute, true
}

// normalizeSpace maps Unicode spaces such as U+00A0 and U+202F to ' '.
// Newlines are kept.
func normalizeSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if r != '\n' && (unicode.IsSpace(r) || unicode.Is(unicode.Zs, r)) {
			return ' '
		}
		return r
	}, s)
}
