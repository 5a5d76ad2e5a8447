package domain

import (
	"fmt"
	"strconv"
	"time"
)

// CycleKey identifies one accounting cycle. A cycle runs from the cutoff
// day of its named month through the day before the cutoff of the next
// month, so a date before the cutoff belongs to the previous month's cycle.
type CycleKey struct {
	Year  int
	Month time.Month
}

// String returns the canonical "YYYY-MM" form, which also sorts
// chronologically.
func (k CycleKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// ParseCycleKey parses a canonical "YYYY-MM" key. The shape is exact: four
// digits, a dash, two digits. Signs, spaces and single-digit months are
// rejected rather than normalized.
func ParseCycleKey(s string) (CycleKey, error) {
	if len(s) != 7 || s[4] != '-' {
		return CycleKey{}, fmt.Errorf("%w: %q", ErrInvalidCycleKey, s)
	}
	for _, i := range []int{0, 1, 2, 3, 5, 6} {
		if s[i] < '0' || s[i] > '9' {
			return CycleKey{}, fmt.Errorf("%w: %q", ErrInvalidCycleKey, s)
		}
	}

	year, _ := strconv.Atoi(s[:4])
	month, _ := strconv.Atoi(s[5:])
	if month < 1 || month > 12 {
		return CycleKey{}, fmt.Errorf("%w: %q", ErrInvalidCycleKey, s)
	}

	return CycleKey{Year: year, Month: time.Month(month)}, nil
}

// ValidateCutoffDay checks that a cutoff day is usable in every month.
func ValidateCutoffDay(cutoffDay int) error {
	if cutoffDay < 1 || cutoffDay > 28 {
		return fmt.Errorf("%w: got %d", ErrInvalidCutoffDay, cutoffDay)
	}

	return nil
}

// CycleKeyFromDate maps a calendar date to its cycle. Dates on or after the
// cutoff day belong to the date's own year-month; earlier dates roll back to
// the previous month, with year rollover at January.
func CycleKeyFromDate(date time.Time, cutoffDay int) CycleKey {
	year, month, day := date.Date()

	if day >= cutoffDay {
		return CycleKey{Year: year, Month: month}
	}

	return CycleKey{Year: year, Month: month}.Shift(-1)
}

// Shift moves the key by whole months using a linear month index, so it is
// exact for any offset and round-trips with the opposite offset.
func (k CycleKey) Shift(offsetMonths int) CycleKey {
	idx := k.Year*12 + int(k.Month) - 1 + offsetMonths

	year := idx / 12
	month := idx%12 + 1
	if month < 1 {
		month += 12
		year--
	}

	return CycleKey{Year: year, Month: time.Month(month)}
}

// Range returns the inclusive date bounds of the cycle: the cutoff day of
// the named month through the day before the cutoff of the following month.
// Times are midnight in loc.
func (k CycleKey) Range(cutoffDay int, loc *time.Location) (start, end time.Time) {
	start = time.Date(k.Year, k.Month, cutoffDay, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, -1)

	return start, end
}

// Contains reports whether the date falls inside the cycle under the given
// cutoff day.
func (k CycleKey) Contains(date time.Time, cutoffDay int) bool {
	return CycleKeyFromDate(date, cutoffDay) == k
}

// DayKey returns the canonical "YYYY-MM-DD" identifier for the date's
// calendar day.
func DayKey(date time.Time) string {
	return date.Format("2006-01-02")
}
