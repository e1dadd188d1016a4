package clock

import (
	"testing"
	"time"
)

func TestDayKey_CrossesMidnightIST(t *testing.T) {
	// 19:00 UTC is 00:30 IST the next day.
	utc := time.Date(2026, 8, 23, 19, 0, 0, 0, time.UTC)
	if got := DayKey(utc); got != "2026-08-24" {
		t.Errorf("DayKey = %q, want 2026-08-24", got)
	}
}

func TestWeekKey_ISOWeek(t *testing.T) {
	// 2026-01-01 falls in ISO week 2026-W01.
	d := time.Date(2026, 1, 1, 12, 0, 0, 0, IST)
	if got := WeekKey(d); got != "2026-W01" {
		t.Errorf("WeekKey = %q, want 2026-W01", got)
	}
}

func TestNextDailyReset(t *testing.T) {
	d := time.Date(2026, 8, 24, 10, 0, 0, 0, IST)
	want := time.Date(2026, 8, 25, 0, 0, 0, 0, IST)
	if got := NextDailyReset(d); !got.Equal(want) {
		t.Errorf("NextDailyReset = %v, want %v", got, want)
	}
}

func TestNextWeeklyReset_FromSunday(t *testing.T) {
	// 2026-08-23 is a Sunday; next reset is Monday the 24th.
	d := time.Date(2026, 8, 23, 23, 59, 0, 0, IST)
	want := time.Date(2026, 8, 24, 0, 0, 0, 0, IST)
	if got := NextWeeklyReset(d); !got.Equal(want) {
		t.Errorf("NextWeeklyReset = %v, want %v", got, want)
	}
}

func TestNextMonthlyReset(t *testing.T) {
	d := time.Date(2026, 8, 24, 10, 0, 0, 0, IST)
	want := time.Date(2026, 9, 1, 0, 0, 0, 0, IST)
	if got := NextMonthlyReset(d); !got.Equal(want) {
		t.Errorf("NextMonthlyReset = %v, want %v", got, want)
	}
}

func TestDaysSince(t *testing.T) {
	from := time.Date(2026, 8, 1, 23, 0, 0, 0, IST)
	to := time.Date(2026, 8, 24, 1, 0, 0, 0, IST)
	if got := DaysSince(from, to); got != 23 {
		t.Errorf("DaysSince = %d, want 23", got)
	}
	if got := DaysSince(to, from); got != 0 {
		t.Errorf("DaysSince reversed = %d, want 0", got)
	}
}
