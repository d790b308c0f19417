// Package reset computes the next occurrence of in-game reset events.
//
// Every function is pure: the caller passes "now" already converted to the
// configured timezone and the result is expressed in that same location.
// Inputs are not validated here; see entities.Settings.Validate.
package reset

import "time"

// TimeOfDay is a wall-clock hour:minute (0-23, 0-59).
type TimeOfDay struct {
	Hour   int
	Minute int
}

// WeeklyRule is a single weekly occurrence. Day uses time.Weekday numbering (0 = Sunday).
type WeeklyRule struct {
	Day    time.Weekday
	Hour   int
	Minute int
}

// OverrideRule is a manually tracked one-off occurrence within the current month.
type OverrideRule struct {
	Day    int
	Hour   int
	Minute int
}

// at returns now's calendar date shifted by days, at hour:minute with seconds zeroed.
func at(now time.Time, days, hour, minute int) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day()+days, hour, minute, 0, 0, now.Location())
}

// NextDaily returns the first of times (scanned in order) that falls strictly
// after now today, or the first element on the following day.
// times must not be empty.
func NextDaily(now time.Time, times []TimeOfDay) time.Time {
	for _, t := range times {
		candidate := at(now, 0, t.Hour, t.Minute)
		if candidate.After(now) {
			return candidate
		}
	}
	first := times[0]
	return at(now, 1, first.Hour, first.Minute)
}

// NextWeekly returns the next day matching rule.Day at rule.Hour:rule.Minute.
// When today is rule.Day the result is today, even if that time has passed.
func NextWeekly(now time.Time, rule WeeklyRule) time.Time {
	offset := (int(rule.Day) - int(now.Weekday()) + 7) % 7
	return at(now, offset, rule.Hour, rule.Minute)
}

// Override places rule in now's year and month. No rollover is applied, so a
// day already behind now yields a past instant.
func Override(now time.Time, rule OverrideRule) time.Time {
	return time.Date(now.Year(), now.Month(), rule.Day, rule.Hour, rule.Minute, 0, 0, now.Location())
}

// NextDailyAt returns today's t, or tomorrow's when today's is before now.
// A candidate equal to now is kept.
func NextDailyAt(now time.Time, t TimeOfDay) time.Time {
	candidate := at(now, 0, t.Hour, t.Minute)
	if candidate.Before(now) {
		candidate = at(now, 1, t.Hour, t.Minute)
	}
	return candidate
}
