package hours

import (
	"fmt"
	"strings"
)

// Day is one of the seven canonical weekdays. The numeric order is the
// canonical week order, Monday first.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysInWeek is the fixed cardinality of a canonical week.
const DaysInWeek = 7

// AllDays lists the canonical week, Monday first.
var AllDays = [DaysInWeek]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayNames = [DaysInWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// dayTokens maps every accepted spelling (lowercase) to its canonical day.
var dayTokens = map[string]Day{
	"mon": Monday, "monday": Monday,
	"tue": Tuesday, "tues": Tuesday, "tuesday": Tuesday,
	"wed": Wednesday, "weds": Wednesday, "wednesday": Wednesday,
	"thu": Thursday, "thur": Thursday, "thurs": Thursday, "thursday": Thursday,
	"fri": Friday, "friday": Friday,
	"sat": Saturday, "saturday": Saturday,
	"sun": Sunday, "sunday": Sunday,
}

// ParseDay resolves a day name or abbreviation, case-insensitively.
func ParseDay(s string) (Day, bool) {
	token := strings.ToLower(strings.TrimSpace(s))
	token = strings.TrimRight(token, ".:,")
	d, ok := dayTokens[token]
	return d, ok
}

// Valid reports whether d is one of the seven canonical days.
func (d Day) Valid() bool { return d >= Monday && d <= Sunday }

// String returns the full day name.
func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

// Short returns the three-letter day name ("Mon").
func (d Day) Short() string {
	if !d.Valid() {
		return d.String()
	}
	return dayNames[d][:3]
}

// Week returns the seven days in order starting at start.
func Week(start Day) []Day {
	if !start.Valid() {
		start = Monday
	}
	days := make([]Day, DaysInWeek)
	for i := range days {
		days[i] = Day((int(start) + i) % DaysInWeek)
	}
	return days
}

// MarshalText encodes the day as its full name.
func (d Day) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid day %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText accepts any spelling understood by ParseDay.
func (d *Day) UnmarshalText(text []byte) error {
	v, ok := ParseDay(string(text))
	if !ok {
		return fmt.Errorf("unknown day %q", string(text))
	}
	*d = v
	return nil
}
