package hours

import (
	"fmt"

	"github.com/goccy/go-json"
)

// MinutesPerDay is the number of minutes in a wall-clock day.
const MinutesPerDay = 24 * 60

// Kind identifies which case of a TimeSlot is active.
type Kind int

const (
	KindUnspecified Kind = iota
	KindClosed
	KindOpenAllDay
	KindRange
)

var kindNames = map[Kind]string{
	KindUnspecified: "unspecified",
	KindClosed:      "closed",
	KindOpenAllDay:  "open_all_day",
	KindRange:       "range",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// TimeSlot is the opening state of a single day. Exactly one case holds:
// unspecified (no data), closed, open all day, or a single open/close range.
// The zero value is Unspecified.
type TimeSlot struct {
	kind  Kind
	open  int // minutes of day, only meaningful for KindRange
	close int // minutes of day, only meaningful for KindRange
}

// Unspecified returns the slot used when no data was supplied for a day.
func Unspecified() TimeSlot { return TimeSlot{kind: KindUnspecified} }

// Closed returns the slot for a day explicitly not open.
func Closed() TimeSlot { return TimeSlot{kind: KindClosed} }

// OpenAllDay returns the slot for a day open 00:00-23:59.
func OpenAllDay() TimeSlot { return TimeSlot{kind: KindOpenAllDay} }

// Range returns an open/close slot. Both bounds are minutes of day in
// [0, 1439]; a close before open is an overnight range.
func Range(open, close int) (TimeSlot, error) {
	if open < 0 || open >= MinutesPerDay {
		return TimeSlot{}, fmt.Errorf("open minute %d out of range", open)
	}
	if close < 0 || close >= MinutesPerDay {
		return TimeSlot{}, fmt.Errorf("close minute %d out of range", close)
	}
	return TimeSlot{kind: KindRange, open: open, close: close}, nil
}

// MustRange is like Range but panics on out-of-range bounds.
func MustRange(open, close int) TimeSlot {
	s, err := Range(open, close)
	if err != nil {
		panic(err)
	}
	return s
}

// Kind reports the active case.
func (s TimeSlot) Kind() Kind { return s.kind }

func (s TimeSlot) IsUnspecified() bool { return s.kind == KindUnspecified }
func (s TimeSlot) IsClosed() bool      { return s.kind == KindClosed }
func (s TimeSlot) IsOpenAllDay() bool  { return s.kind == KindOpenAllDay }
func (s TimeSlot) IsRange() bool       { return s.kind == KindRange }

// IsOpen reports whether the slot carries concrete opening hours.
func (s TimeSlot) IsOpen() bool { return s.kind == KindOpenAllDay || s.kind == KindRange }

// Bounds returns the open and close minutes. Open-all-day reports 0 and 1439;
// the remaining cases report ok=false.
func (s TimeSlot) Bounds() (open, close int, ok bool) {
	switch s.kind {
	case KindRange:
		return s.open, s.close, true
	case KindOpenAllDay:
		return 0, MinutesPerDay - 1, true
	}
	return 0, 0, false
}

// Overnight reports whether a range closes after midnight.
func (s TimeSlot) Overnight() bool { return s.kind == KindRange && s.close < s.open }

// Span returns the open and close minutes with an overnight close moved
// past midnight (close + 1440), so that close >= open always holds.
func (s TimeSlot) Span() (open, close int) {
	open, close, _ = s.Bounds()
	if s.Overnight() {
		close += MinutesPerDay
	}
	return open, close
}

// Duration returns the number of open minutes, overnight aware.
func (s TimeSlot) Duration() int {
	if !s.IsOpen() {
		return 0
	}
	open, close := s.Span()
	return close - open
}

// OpenDisplay is the opening time as shown in remarks.
func (s TimeSlot) OpenDisplay() string {
	switch s.kind {
	case KindClosed:
		return "Closed"
	case KindUnspecified:
		return "Blank"
	}
	open, _, _ := s.Bounds()
	return FormatMinutes(open)
}

// CloseDisplay is the closing time as shown in remarks.
func (s TimeSlot) CloseDisplay() string {
	switch s.kind {
	case KindClosed:
		return "Closed"
	case KindUnspecified:
		return "Blank"
	}
	_, close, _ := s.Bounds()
	return FormatMinutes(close)
}

// String returns the slot as "9:00 AM - 10:00 PM", "Closed", "Blank" or
// "Open 24 Hours".
func (s TimeSlot) String() string {
	switch s.kind {
	case KindClosed:
		return "Closed"
	case KindOpenAllDay:
		return "Open 24 Hours"
	case KindRange:
		return FormatTimeRange(s.open, s.close)
	}
	return "Blank"
}

type slotJSON struct {
	Kind  string `json:"kind"`
	Open  *int   `json:"open,omitempty"`
	Close *int   `json:"close,omitempty"`
}

// MarshalJSON encodes the slot as {"kind": ..., "open": ..., "close": ...};
// bounds are present only for ranges.
func (s TimeSlot) MarshalJSON() ([]byte, error) {
	v := slotJSON{Kind: s.kind.String()}
	if s.kind == KindRange {
		open, close := s.open, s.close
		v.Open, v.Close = &open, &close
	}
	return json.Marshal(v)
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (s *TimeSlot) UnmarshalJSON(data []byte) error {
	var v slotJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v.Kind {
	case "", kindNames[KindUnspecified]:
		*s = Unspecified()
	case kindNames[KindClosed]:
		*s = Closed()
	case kindNames[KindOpenAllDay]:
		*s = OpenAllDay()
	case kindNames[KindRange]:
		if v.Open == nil || v.Close == nil {
			return fmt.Errorf("range slot requires open and close")
		}
		r, err := Range(*v.Open, *v.Close)
		if err != nil {
			return err
		}
		*s = r
	default:
		return fmt.Errorf("unknown slot kind %q", v.Kind)
	}
	return nil
}
