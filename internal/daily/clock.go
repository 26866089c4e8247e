package daily

import (
	"fmt"
	"time"
)

// dateKeyLayout renders a calendar day such as "Fri Oct 16 2026".
const dateKeyLayout = "Mon Jan 02 2006"

// Clock decides which calendar day it is and when the day rolls over.
// The date key and the reset boundary always use the same location.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.Local
	}
	return &Clock{loc: loc, now: time.Now}
}

// WithNow returns a copy of the clock that reads the current time from fn.
func (c *Clock) WithNow(fn func() time.Time) *Clock {
	return &Clock{loc: c.loc, now: fn}
}

// LoadLocation resolves the configured reset time zone. An empty name and
// "Local" mean the process's local zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load reset location %q: %w", name, err)
	}
	return loc, nil
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// DateKey renders the calendar day of t, without any time component.
func (c *Clock) DateKey(t time.Time) string {
	return t.In(c.loc).Format(dateKeyLayout)
}

// ResetBoundary is midnight at the start of t's calendar day.
func (c *Clock) ResetBoundary(t time.Time) time.Time {
	t = t.In(c.loc)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.loc)
}

// NextReset is the midnight that ends t's calendar day.
func (c *Clock) NextReset(t time.Time) time.Time {
	return c.ResetBoundary(t).AddDate(0, 0, 1)
}

// ShouldReset reports whether state last reset at lastReset is stale at now.
// A zero lastReset is always stale.
func (c *Clock) ShouldReset(lastReset, now time.Time) bool {
	if lastReset.IsZero() {
		return true
	}
	return lastReset.Before(c.ResetBoundary(now))
}
