package compare

import "github.com/lokeshsukhwal/Dasher/internal/hours"

// DefaultTolerance is the number of minutes within which two clock times are
// treated as equal.
const DefaultTolerance = 3

// Details are the explanatory flags behind a classification.
type Details struct {
	OpenChanged    bool `json:"openChanged"`
	CloseChanged   bool `json:"closeChanged"`
	OpenExtended   bool `json:"openExtended"`
	CloseExtended  bool `json:"closeExtended"`
	OpenReduced    bool `json:"openReduced"`
	CloseReduced   bool `json:"closeReduced"`
	BecameAllDay   bool `json:"becameAllDay"`
	BecameClosed   bool `json:"becameClosed"`
	WasClosed      bool `json:"wasClosed"`
	WasUnspecified bool `json:"wasUnspecified"`

	OldOpen  string `json:"oldOpen"`
	OldClose string `json:"oldClose"`
	NewOpen  string `json:"newOpen"`
	NewClose string `json:"newClose"`
}

// Outcome is the result of comparing one day. Old and New are the display
// strings relevant to the classification: opening times for open-start
// changes, closing times for close-end changes, whole slots otherwise.
type Outcome struct {
	Class   Classification `json:"classification"`
	Old     string         `json:"old"`
	New     string         `json:"new"`
	Details Details        `json:"details"`
}

// Day classifies the change from oldSlot to newSlot. tol is the tolerance in
// minutes; a negative tol is treated as zero.
func Day(oldSlot, newSlot hours.TimeSlot, tol int) Outcome {
	if tol < 0 {
		tol = 0
	}

	d := Details{
		OldOpen:  oldSlot.OpenDisplay(),
		OldClose: oldSlot.CloseDisplay(),
		NewOpen:  newSlot.OpenDisplay(),
		NewClose: newSlot.CloseDisplay(),
	}

	var c Classification
	switch {
	case !oldSlot.IsOpen() && newSlot.IsOpen():
		d.OpenExtended, d.CloseExtended = true, true
		if oldSlot.IsClosed() {
			d.WasClosed = true
			c = OpenedFromClosed
		} else {
			d.WasUnspecified = true
			c = OpenedFromUnspecified
		}
	case oldSlot.IsOpen() && newSlot.IsClosed():
		d.BecameClosed = true
		c = ClosedFromOpen
	case oldSlot.IsClosed() && newSlot.IsClosed(), oldSlot.IsUnspecified() && newSlot.IsUnspecified():
		c = NoChange
	case oldSlot.IsOpenAllDay() && newSlot.IsOpenAllDay():
		c = NoChange
	case oldSlot.IsRange() && newSlot.IsOpenAllDay():
		d.BecameAllDay = true
		d.OpenExtended, d.CloseExtended = true, true
		c = FullRangeExtended
	case oldSlot.IsOpenAllDay() && newSlot.IsRange():
		d.OpenReduced, d.CloseReduced = true, true
		c = FullRangeReduced
	case oldSlot.IsRange() && newSlot.IsRange():
		c = compareRanges(oldSlot, newSlot, tol, &d)
	default:
		// the new listing carries nothing comparable (open or closed vs blank)
		c = NoChange
	}

	return Outcome{Class: c, Old: displayOld(c, oldSlot, d), New: displayNew(c, newSlot, d), Details: d}
}

func compareRanges(oldSlot, newSlot hours.TimeSlot, tol int, d *Details) Classification {
	oldOpen, oldClose := oldSlot.Span()
	newOpen, newClose := newSlot.Span()

	startDiff := newOpen - oldOpen
	endDiff := newClose - oldClose

	if abs(startDiff) <= tol && abs(endDiff) <= tol {
		return NoChange
	}

	d.OpenReduced = startDiff > tol
	d.OpenExtended = startDiff < -tol
	d.CloseReduced = endDiff < -tol
	d.CloseExtended = endDiff > tol
	d.OpenChanged = d.OpenReduced || d.OpenExtended
	d.CloseChanged = d.CloseReduced || d.CloseExtended

	switch {
	case d.OpenChanged && d.CloseChanged:
		if d.OpenExtended && d.CloseExtended {
			return FullRangeExtended
		}
		if d.OpenReduced && d.CloseReduced {
			return FullRangeReduced
		}
		if newSlot.Duration() > oldSlot.Duration() {
			return FullRangeExtended
		}
		return FullRangeReduced
	case d.OpenChanged:
		if d.OpenExtended {
			return OpenStartExtended
		}
		return OpenStartReduced
	default:
		if d.CloseExtended {
			return CloseEndExtended
		}
		return CloseEndReduced
	}
}

func displayOld(c Classification, s hours.TimeSlot, d Details) string {
	switch c {
	case OpenStartExtended, OpenStartReduced:
		return d.OldOpen
	case CloseEndExtended, CloseEndReduced:
		return d.OldClose
	}
	return s.String()
}

func displayNew(c Classification, s hours.TimeSlot, d Details) string {
	switch c {
	case OpenStartExtended, OpenStartReduced:
		return d.NewOpen
	case CloseEndExtended, CloseEndReduced:
		return d.NewClose
	}
	return s.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
