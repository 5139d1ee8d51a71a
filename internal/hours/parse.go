package hours

import (
	"fmt"
	"regexp"
	"strings"
)

// Entry is the parsed data for one day.
type Entry struct {
	Slot  TimeSlot `json:"slot"`
	Notes []string `json:"notes,omitempty"`
}

// Schedule maps canonical days to their parsed entry. Days absent from the
// input are absent from the map until FillGaps is applied.
type Schedule map[Day]Entry

// Slot returns the slot for d, Unspecified when the day is absent.
func (s Schedule) Slot(d Day) TimeSlot {
	return s[d].Slot
}

// FillGaps returns a copy of s with every canonical day present; missing
// days are Unspecified.
func FillGaps(s Schedule) Schedule {
	out := make(Schedule, DaysInWeek)
	for _, d := range AllDays {
		if e, ok := s[d]; ok {
			out[d] = e
		} else {
			out[d] = Entry{Slot: Unspecified()}
		}
	}
	return out
}

// Dialect selects the input format understood by Parse.
type Dialect int

const (
	// Detect picks Compact or FreeText from the text itself.
	Detect Dialect = iota
	// Compact is one "Day[:] <time>" line per day.
	Compact
	// FreeText allows day headers followed by note and time lines.
	FreeText
)

var dialectNames = map[Dialect]string{
	Detect:   "auto",
	Compact:  "compact",
	FreeText: "freetext",
}

func (d Dialect) String() string {
	if name, ok := dialectNames[d]; ok {
		return name
	}
	return fmt.Sprintf("dialect(%d)", int(d))
}

// ParseDialect resolves "auto", "compact" or "freetext" (also "free-text").
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "detect":
		return Detect, nil
	case "compact":
		return Compact, nil
	case "freetext", "free-text", "free":
		return FreeText, nil
	}
	return Detect, fmt.Errorf("unknown input format %q (expected auto, compact or freetext)", s)
}

var (
	// leading word of a line, optionally followed by "." ":" or ","
	leadingWord = regexp.MustCompile(`^([A-Za-z]+)\.?\s*[:,]?\s*(.*)$`)
	// (notes in parentheses)
	parenthetical = regexp.MustCompile(`\(([^)]*)\)`)
)

// Parse reads text in the given dialect.
func Parse(text string, dialect Dialect) Schedule {
	switch dialect {
	case Compact:
		return ParseCompact(text)
	case FreeText:
		return ParseFreeText(text)
	}
	return Parse(text, DetectDialect(text))
}

// DetectDialect reports FreeText when any line is not a self-contained
// "Day <time>" line, Compact otherwise.
func DetectDialect(text string) Dialect {
	for _, line := range splitLines(text) {
		if isHeaderLine(line) {
			continue
		}
		_, rest, ok := splitDay(line)
		if !ok {
			return FreeText
		}
		if strings.TrimSpace(parenthetical.ReplaceAllString(rest, "")) == "" {
			return FreeText
		}
	}
	return Compact
}

// ParseCompact reads one line per day in the form "Monday: 9:00 AM – 10:00 PM".
// Lines that do not start with a recognized day are ignored.
func ParseCompact(text string) Schedule {
	s := make(Schedule)
	for _, line := range splitLines(text) {
		day, rest, ok := splitDay(line)
		if !ok {
			continue
		}
		s[day] = Entry{Slot: ParseTimeSlot(rest)}
	}
	return s
}

// ParseFreeText reads the multi-line listing format, where a day header may
// carry its time on the same line or on a following line, with optional
// parenthetical notes in between:
//
//	Monday
//	(Labor Day)
//	Hours might differ
//	9 AM–5 PM
func ParseFreeText(text string) Schedule {
	st := freeTextState{schedule: make(Schedule)}
	for _, line := range splitLines(text) {
		st = st.step(line)
	}
	return st.schedule
}

// freeTextState is threaded through the lines of a free-text listing.
type freeTextState struct {
	schedule Schedule
	day      Day
	awaiting bool // a header was seen and its time is still pending
	notes    []string
}

func (st freeTextState) step(line string) freeTextState {
	if isHeaderLine(line) {
		return st
	}

	if day, rest, ok := splitDay(line); ok {
		st.day, st.awaiting, st.notes = day, true, nil
		for _, m := range parenthetical.FindAllStringSubmatch(rest, -1) {
			st.notes = append(st.notes, strings.TrimSpace(m[1]))
		}
		timeText := strings.TrimSpace(parenthetical.ReplaceAllString(rest, ""))
		if timeText != "" {
			return st.attach(timeText)
		}
		return st
	}

	if !st.awaiting {
		return st
	}

	lower := strings.ToLower(line)
	switch {
	case strings.HasPrefix(line, "(") || strings.Contains(lower, "might differ") || strings.Contains(lower, "hours might"):
		st.notes = append(st.notes, strings.TrimSpace(strings.NewReplacer("(", "", ")", "").Replace(line)))
	case isTimeCandidate(lower):
		return st.attach(line)
	}
	return st
}

func (st freeTextState) attach(timeText string) freeTextState {
	st.schedule[st.day] = Entry{Slot: ParseTimeSlot(timeText), Notes: st.notes}
	st.awaiting, st.notes = false, nil
	return st
}

func isTimeCandidate(lower string) bool {
	if strings.Contains(lower, "open") || strings.Contains(lower, "closed") {
		return true
	}
	return strings.ContainsAny(lower, "0123456789")
}

// isHeaderLine reports listing boilerplate such as "Hours:".
func isHeaderLine(line string) bool {
	lower := strings.ToLower(line)
	return lower == "hours" || lower == "hours:" || strings.Contains(lower, "suggest new hours")
}

// splitDay splits "Monday: 9-5" into (Monday, "9-5") when the leading word
// is a recognized day.
func splitDay(line string) (Day, string, bool) {
	m := leadingWord.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	day, ok := ParseDay(m[1])
	if !ok {
		return 0, "", false
	}
	return day, strings.TrimSpace(m[2]), true
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(normalizeSpace(l)); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
