package compare

import "fmt"

// Classification is the kind of change seen on a single day.
type Classification int

const (
	NoChange Classification = iota
	OpenedFromClosed
	ClosedFromOpen
	OpenedFromUnspecified
	OpenStartExtended
	OpenStartReduced
	CloseEndExtended
	CloseEndReduced
	FullRangeExtended
	FullRangeReduced
)

// Classifications lists every classification in bucket order: reductions,
// extensions, new openings, then no change.
var Classifications = []Classification{
	ClosedFromOpen,
	OpenStartReduced,
	CloseEndReduced,
	FullRangeReduced,
	OpenStartExtended,
	CloseEndExtended,
	FullRangeExtended,
	OpenedFromClosed,
	OpenedFromUnspecified,
	NoChange,
}

var classificationNames = map[Classification]string{
	NoChange:              "no_change",
	OpenedFromClosed:      "opened_from_closed",
	ClosedFromOpen:        "closed_from_open",
	OpenedFromUnspecified: "opened_from_unspecified",
	OpenStartExtended:     "open_start_extended",
	OpenStartReduced:      "open_start_reduced",
	CloseEndExtended:      "close_end_extended",
	CloseEndReduced:       "close_end_reduced",
	FullRangeExtended:     "full_range_extended",
	FullRangeReduced:      "full_range_reduced",
}

func (c Classification) String() string {
	if name, ok := classificationNames[c]; ok {
		return name
	}
	return fmt.Sprintf("classification(%d)", int(c))
}

// ParseClassification resolves the name returned by String.
func ParseClassification(s string) (Classification, error) {
	for c, name := range classificationNames {
		if name == s {
			return c, nil
		}
	}
	return NoChange, fmt.Errorf("unknown classification %q", s)
}

// MarshalText lets classifications key JSON objects.
func (c Classification) MarshalText() ([]byte, error) {
	if _, ok := classificationNames[c]; !ok {
		return nil, fmt.Errorf("invalid classification %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (c *Classification) UnmarshalText(text []byte) error {
	v, err := ParseClassification(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// IsReduction reports a closure or any shortening of hours. These days need
// an update.
func (c Classification) IsReduction() bool {
	switch c {
	case ClosedFromOpen, OpenStartReduced, CloseEndReduced, FullRangeReduced:
		return true
	}
	return false
}

// IsExtension reports longer hours or a new opening.
func (c Classification) IsExtension() bool {
	switch c {
	case OpenStartExtended, CloseEndExtended, FullRangeExtended, OpenedFromClosed, OpenedFromUnspecified:
		return true
	}
	return false
}

// Status is the short label shown per day.
func (c Classification) Status() string {
	switch c {
	case OpenStartExtended, CloseEndExtended, FullRangeExtended, OpenedFromUnspecified:
		return "Extended"
	case OpenStartReduced, CloseEndReduced, FullRangeReduced:
		return "Reduced"
	case ClosedFromOpen:
		return "Closed Now"
	case OpenedFromClosed:
		return "Open Now"
	}
	return "No Change"
}

// Category names the part of the day that changed.
func (c Classification) Category() string {
	switch c {
	case OpenStartExtended, OpenStartReduced:
		return "Opening Time"
	case CloseEndExtended, CloseEndReduced:
		return "End Time"
	case FullRangeExtended, FullRangeReduced, OpenedFromUnspecified:
		return "Full Day"
	case ClosedFromOpen, OpenedFromClosed:
		return "Status Change"
	}
	return "No Change"
}
