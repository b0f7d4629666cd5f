package schedule

import (
	"testing"
	"time"

	"github.com/AquaPirot/pirotskevesti/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func eventOn(title string, day time.Time) model.Event {
	return model.Event{Title: title, Date: day}
}

func TestIsToday(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.Local)

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"same day midnight", date(2024, 3, 10), true},
		{"same day late evening", time.Date(2024, 3, 10, 23, 59, 59, 0, time.Local), true},
		{"previous day", date(2024, 3, 9), false},
		{"next day", date(2024, 3, 11), false},
		{"same day next year", date(2025, 3, 10), false},
		{"same day next month", date(2024, 4, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsToday(tc.t, now); got != tc.want {
				t.Errorf("IsToday(%v, %v) = %v, want %v", tc.t, now, got, tc.want)
			}
		})
	}
}

func TestIsUpcomingBoundaries(t *testing.T) {
	// Late in the day on purpose: the window is calendar-day based, so the
	// time-of-day must not shrink it.
	now := time.Date(2024, 3, 10, 22, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"exactly today", date(2024, 3, 10), true},
		{"tomorrow", date(2024, 3, 11), true},
		{"exactly 7 days out", date(2024, 3, 17), true},
		{"7 days out early morning", time.Date(2024, 3, 17, 1, 0, 0, 0, time.Local), true},
		{"8 days out", date(2024, 3, 18), false},
		{"yesterday", date(2024, 3, 9), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsUpcoming(tc.date, now); got != tc.want {
				t.Errorf("IsUpcoming(%v, %v) = %v, want %v", tc.date, now, got, tc.want)
			}
		})
	}
}

func TestIsUpcomingAcrossMonthEnd(t *testing.T) {
	now := date(2024, 2, 26)
	if !IsUpcoming(date(2024, 3, 4), now) {
		t.Error("event 7 days out across a month boundary should be upcoming")
	}
	if IsUpcoming(date(2024, 3, 5), now) {
		t.Error("event 8 days out across a month boundary should not be upcoming")
	}
}

func TestUpcomingScenario(t *testing.T) {
	now := date(2024, 3, 10)
	events := []model.Event{
		eventOn("far", date(2024, 3, 20)),
		eventOn("today", date(2024, 3, 10)),
		eventOn("midway", date(2024, 3, 15)),
	}

	got := Upcoming(events, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 upcoming events, got %d", len(got))
	}
	if got[0].Title != "today" || got[1].Title != "midway" {
		t.Errorf("expected [today midway], got [%s %s]", got[0].Title, got[1].Title)
	}
}

func TestUpcomingCapAndOrder(t *testing.T) {
	now := date(2024, 3, 10)
	var events []model.Event
	// Seven eligible events, reverse date order.
	for day := 16; day >= 10; day-- {
		events = append(events, eventOn("e", date(2024, 3, day)))
	}

	got := Upcoming(events, now)
	if len(got) != UpcomingLimit {
		t.Fatalf("expected %d events, got %d", UpcomingLimit, len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Date.Before(got[i-1].Date) {
			t.Errorf("events out of order at %d: %v before %v", i, got[i].Date, got[i-1].Date)
		}
	}
	for _, e := range got {
		if !IsUpcoming(e.Date, now) {
			t.Errorf("returned event on %v is outside the window", e.Date)
		}
	}
}

func TestUpcomingStableForSameDay(t *testing.T) {
	now := date(2024, 3, 10)
	events := []model.Event{
		eventOn("first", date(2024, 3, 12)),
		eventOn("second", date(2024, 3, 12)),
		eventOn("third", date(2024, 3, 12)),
	}

	got := Upcoming(events, now)
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	for i, want := range []string{"first", "second", "third"} {
		if got[i].Title != want {
			t.Errorf("position %d: expected %s, got %s", i, want, got[i].Title)
		}
	}
}

func TestUpcomingEmpty(t *testing.T) {
	if got := Upcoming(nil, date(2024, 3, 10)); len(got) != 0 {
		t.Errorf("expected no events, got %d", len(got))
	}
}

func TestTodaysTasks(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local)
	tasks := []model.Task{
		{Description: "a", Date: time.Date(2024, 3, 10, 18, 0, 0, 0, time.Local)},
		{Description: "b", Date: date(2024, 3, 9)},
		{Description: "c", Date: date(2024, 3, 10)},
	}

	got := TodaysTasks(tasks, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[0].Description != "a" || got[1].Description != "c" {
		t.Errorf("expected [a c], got [%s %s]", got[0].Description, got[1].Description)
	}
}
