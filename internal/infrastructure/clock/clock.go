package clock

import (
	"fmt"
	"time"
)

// FixedOffset reports the current time in a fixed UTC offset. The ledger's
// day and cycle boundaries follow this offset regardless of the host
// timezone, so the same deployment behaves identically everywhere.
type FixedOffset struct {
	loc *time.Location
}

// NewFixedOffset creates a clock pinned to UTC+offsetHours.
func NewFixedOffset(offsetHours int) *FixedOffset {
	name := fmt.Sprintf("UTC%+d", offsetHours)

	return &FixedOffset{loc: time.FixedZone(name, offsetHours*3600)}
}

// Now returns the current time in the fixed offset, truncated to seconds.
func (c *FixedOffset) Now() time.Time {
	return time.Now().In(c.loc).Truncate(time.Second)
}

// Location returns the fixed-offset location.
func (c *FixedOffset) Location() *time.Location {
	return c.loc
}
