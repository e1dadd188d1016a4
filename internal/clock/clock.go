// Package clock provides the time source and the IST calendar helpers that
// govern quota resets and snapshot keys. All daily/weekly/monthly boundaries
// are computed in Asia/Kolkata regardless of server timezone.
package clock

import (
	"fmt"
	"time"
)

// IST is the Asia/Kolkata location. SQLite and the snapshot keys store UTC
// instants; IST is only used for bucketing.
var IST = loadIST()

func loadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// No DST; a fixed offset is exact.
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

// Clock is the injectable time source.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns the wall clock.
func System() Clock { return systemClock{} }

// Fixed is a Clock pinned to one instant, for tests and jobs.
type Fixed struct{ T time.Time }

func (f Fixed) Now() time.Time { return f.T }

// DayKey returns the IST calendar date key, e.g. "2026-08-24".
func DayKey(t time.Time) string {
	return t.In(IST).Format("2006-01-02")
}

// WeekKey returns the IST ISO week key, e.g. "2026-W34".
func WeekKey(t time.Time) string {
	y, w := t.In(IST).ISOWeek()
	return fmt.Sprintf("%d-W%02d", y, w)
}

// MonthKey returns the IST year-month key, e.g. "2026-08".
func MonthKey(t time.Time) string {
	return t.In(IST).Format("2006-01")
}

// StartOfDay returns midnight IST of t's IST date, as an instant.
func StartOfDay(t time.Time) time.Time {
	ist := t.In(IST)
	return time.Date(ist.Year(), ist.Month(), ist.Day(), 0, 0, 0, 0, IST)
}

// NextDailyReset returns midnight IST following t.
func NextDailyReset(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// NextWeeklyReset returns the Monday midnight IST following t.
func NextWeeklyReset(t time.Time) time.Time {
	day := StartOfDay(t)
	// Monday-based offset to the next ISO week start.
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7
	}
	return day.AddDate(0, 0, 8-wd)
}

// NextMonthlyReset returns the first midnight IST of the month following t.
func NextMonthlyReset(t time.Time) time.Time {
	ist := t.In(IST)
	return time.Date(ist.Year(), ist.Month(), 1, 0, 0, 0, 0, IST).AddDate(0, 1, 0)
}

// DaysSince returns whole IST calendar days from `from` to `to`, never
// negative. Used for current_day analytics.
func DaysSince(from, to time.Time) int {
	d := int(StartOfDay(to).Sub(StartOfDay(from)).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
