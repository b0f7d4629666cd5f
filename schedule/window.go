// Package schedule holds the pure date logic behind the dashboard's derived
// views: the "today" and "next 7 days" classifiers and the month calendar
// grid. Everything compares local calendar dates; time-of-day never
// participates.
package schedule

import (
	"sort"
	"time"

	"github.com/AquaPirot/pirotskevesti/model"
)

// UpcomingWindowDays is the inclusive span of the upcoming-events view.
const UpcomingWindowDays = 7

// UpcomingLimit caps how many events the upcoming view returns.
const UpcomingLimit = 5

// dateOnly truncates t to midnight local time.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsToday reports whether t falls on the same local calendar day as now.
func IsToday(t, now time.Time) bool {
	return t.Year() == now.Year() && t.Month() == now.Month() && t.Day() == now.Day()
}

// IsUpcoming reports whether date falls within [today, today+7 days],
// both ends inclusive. The comparison is by calendar day, never by elapsed
// hours: an event 169 hours away still counts if its date is within the
// window.
func IsUpcoming(date, now time.Time) bool {
	day := dateOnly(date)
	today := dateOnly(now)
	last := today.AddDate(0, 0, UpcomingWindowDays)
	return !day.Before(today) && !day.After(last)
}

// Upcoming filters events to the next-7-days window, sorts them soonest
// first (stable, so same-day events keep their input order) and returns at
// most UpcomingLimit of them.
func Upcoming(events []model.Event, now time.Time) []model.Event {
	var upcoming []model.Event
	for _, e := range events {
		if IsUpcoming(e.Date, now) {
			upcoming = append(upcoming, e)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})

	if len(upcoming) > UpcomingLimit {
		upcoming = upcoming[:UpcomingLimit]
	}
	return upcoming
}

// TodaysTasks returns the tasks whose date falls on now's calendar day,
// preserving input order.
func TodaysTasks(tasks []model.Task, now time.Time) []model.Task {
	var todays []model.Task
	for _, t := range tasks {
		if IsToday(t.Date, now) {
			todays = append(todays, t)
		}
	}
	return todays
}
