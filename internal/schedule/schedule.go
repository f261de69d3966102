// Package schedule holds the station's weekly programming and answers
// "what's on air right now" against a wall clock.
package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Show is one entry of the weekly programming table. Times are local
// wall-clock strings in 12-hour format, days a free-form description
// ("Monday-Friday", "daily", "Saturday, Sunday", ...).
type Show struct {
	Name        string
	StartTime   string
	EndTime     string
	Description string
	Sponsor     string
	DaysOfWeek  string
}

// TimeRange returns the show's display window, e.g. "6:00 AM - 10:00 AM".
func (s Show) TimeRange() string {
	return s.StartTime + " - " + s.EndTime
}

// Days returns the set of weekdays the show airs on. Unrecognized day
// descriptions yield an empty set, so the show never matches.
func (s Show) Days() map[time.Weekday]bool {
	return parseDays(s.DaysOfWeek)
}

// AiringAt reports whether the show is on air at the given time. The end
// of the window is exclusive: a 10:00 AM show end means 10:00 AM belongs
// to the next show.
func (s Show) AiringAt(now time.Time) bool {
	if !s.Days()[now.Weekday()] {
		return false
	}

	start, err := parseClock(s.StartTime)
	if err != nil {
		return false
	}
	end, err := parseClock(s.EndTime)
	if err != nil {
		return false
	}

	minute := now.Hour()*60 + now.Minute()
	return minute >= start && minute < end
}

// StartsAt resolves the show's start time on the same day as the given
// time. Returns false when the start time is unparsable.
func (s Show) StartsAt(day time.Time) (time.Time, bool) {
	start, err := parseClock(s.StartTime)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), start/60, start%60, 0, 0, day.Location()), true
}

// Current returns the first show in the table airing at the given time,
// or false if nothing matches. Overlapping windows are resolved by table
// order.
func Current(now time.Time) (Show, bool) {
	return currentIn(Programming, now)
}

func currentIn(shows []Show, now time.Time) (Show, bool) {
	for _, show := range shows {
		if show.AiringAt(now) {
			return show, true
		}
	}
	return Show{}, false
}

// ShowsOn returns all shows airing on the given weekday, in table order.
func ShowsOn(day time.Weekday) []Show {
	var result []Show
	for _, show := range Programming {
		if show.Days()[day] {
			result = append(result, show)
		}
	}
	return result
}

// parseClock converts a 12-hour wall-clock string ("6:00 AM") to minutes
// since midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse("3:04 PM", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("failed to parse clock time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

var dayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseDays(desc string) map[time.Weekday]bool {
	lowered := strings.ToLower(desc)
	days := make(map[time.Weekday]bool)

	switch {
	case strings.Contains(lowered, "daily") || strings.Contains(lowered, "every day"):
		for d := time.Sunday; d <= time.Saturday; d++ {
			days[d] = true
		}
	case strings.Contains(lowered, "monday-friday") || strings.Contains(lowered, "weekday"):
		for d := time.Monday; d <= time.Friday; d++ {
			days[d] = true
		}
	case strings.Contains(lowered, "weekend"):
		days[time.Saturday] = true
		days[time.Sunday] = true
	default:
		for name, day := range dayNames {
			if strings.Contains(lowered, name) {
				days[day] = true
			}
		}
	}

	return days
}
