package starfall

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/starfall/internal/config"
)

// Clock tracks elapsed run time in whole seconds.
type Clock struct {
	minutes int
	seconds int // Always within [0, 59]
}

// Tick advances the clock by one second.
func (c *Clock) Tick() {
	c.seconds++
	if c.seconds >= 60 {
		c.seconds = 0
		c.minutes++
	}
}

// Reset sets the clock back to 00:00.
func (c *Clock) Reset() {
	c.minutes = 0
	c.seconds = 0
}

// Minutes returns the zero-padded minutes.
func (c Clock) Minutes() string {
	return fmt.Sprintf("%02d", c.minutes)
}

// Seconds returns the zero-padded seconds.
func (c Clock) Seconds() string {
	return fmt.Sprintf("%02d", c.seconds)
}

// String renders the clock as MM:SS.
func (c Clock) String() string {
	return c.Minutes() + ":" + c.Seconds()
}

// TotalSeconds returns the elapsed time in seconds.
func (c Clock) TotalSeconds() int {
	return c.minutes*60 + c.seconds
}

// Record captures the clock as a run record.
func (c Clock) Record() Record {
	return Record{Minutes: c.minutes, Seconds: c.seconds}
}

// Record is a finished run time.
type Record struct {
	Minutes int
	Seconds int
}

// RecordFromSeconds builds a record from a duration in seconds.
func RecordFromSeconds(total int) Record {
	if total < 0 {
		total = 0
	}
	return Record{Minutes: total / 60, Seconds: total % 60}
}

// String renders the record as MM:SS.
func (r Record) String() string {
	return fmt.Sprintf("%02d:%02d", r.Minutes, r.Seconds)
}

// TotalSeconds returns the record length in seconds.
func (r Record) TotalSeconds() int {
	return r.Minutes*60 + r.Seconds
}

// ConcatValue joins the zero-padded minute and second strings and reads the
// result as one number, so 01:30 becomes 130. This is how best times have
// always been ranked; it is not a duration.
func (r Record) ConcatValue() int {
	v, err := strconv.Atoi(fmt.Sprintf("%02d%02d", r.Minutes, r.Seconds))
	if err != nil {
		return 0
	}
	return v
}

// Comparator reports whether candidate should replace best.
type Comparator func(candidate, best Record) bool

// ConcatBetter ranks records by ConcatValue.
func ConcatBetter(candidate, best Record) bool {
	return candidate.ConcatValue() > best.ConcatValue()
}

// DurationBetter ranks records by total seconds.
func DurationBetter(candidate, best Record) bool {
	return candidate.TotalSeconds() > best.TotalSeconds()
}

// ComparatorFor returns the comparator for a records.compare setting.
// Unknown settings fall back to the concatenated comparison.
func ComparatorFor(mode string) Comparator {
	if mode == config.CompareDuration {
		return DurationBetter
	}
	return ConcatBetter
}
