package domain

import (
	"strings"
	"time"
)

// Weekday is one of the seven canonical lowercase day names used to scope
// post-its and dashboard views. Input is matched case-insensitively and
// canonicalized before it reaches a store query.
type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

// Weekdays lists all days in calendar order, indexed like time.Weekday.
var Weekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// ParseWeekday canonicalizes a day name to its lowercase form.
func ParseWeekday(s string) (Weekday, error) {
	day := Weekday(strings.ToLower(s))
	for _, w := range Weekdays {
		if day == w {
			return w, nil
		}
	}
	return "", ErrInvalidWeekday
}

// WeekdayOf returns the canonical day name for an instant.
func WeekdayOf(t time.Time) Weekday {
	return Weekdays[int(t.Weekday())]
}

// CurrentWeekday returns today's canonical day name.
func CurrentWeekday() Weekday {
	return WeekdayOf(time.Now())
}

// IsCurrentWeekday reports whether the candidate names today, ignoring
// case. Used only to decide which day tab is highlighted.
func IsCurrentWeekday(candidate string) bool {
	return Weekday(strings.ToLower(candidate)) == CurrentWeekday()
}
