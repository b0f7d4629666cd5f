package schedule

import (
	"time"

	"github.com/AquaPirot/pirotskevesti/model"
)

// Months are zero-based (0=January) throughout this file, matching the
// cursor the dashboard keeps.

// DaysInMonth returns the number of calendar days in the given month.
// time.Date normalizes day 0 of the following month to the last day of
// this one, which bakes in the Gregorian leap rule.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.Local).Day()
}

// FirstWeekdayOfMonth returns the weekday of day 1, 0=Sunday..6=Saturday.
func FirstWeekdayOfMonth(year, month int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.Local).Weekday())
}

// LeadingBlankCells returns how many empty cells precede day 1 in the grid.
// Weeks start on Monday (the dashboard renders Pon..Ned), so Sunday maps
// to six blanks.
func LeadingBlankCells(year, month int) int {
	return (FirstWeekdayOfMonth(year, month) + 6) % 7
}

// EventsOnDate returns the events scheduled on exactly the given calendar
// day, preserving input order.
func EventsOnDate(events []model.Event, year, month, day int) []model.Event {
	var matched []model.Event
	for _, e := range events {
		if e.Date.Year() == year && int(e.Date.Month()) == month+1 && e.Date.Day() == day {
			matched = append(matched, e)
		}
	}
	return matched
}

// Cell is one slot of the 7-column month grid. Day 0 marks a leading blank
// before the 1st.
type Cell struct {
	Day     int           `json:"day"`
	IsToday bool          `json:"is_today"`
	Events  []model.Event `json:"events"`
}

// Blank reports whether the cell precedes day 1.
func (c Cell) Blank() bool {
	return c.Day == 0
}

// BuildMonthGrid lays out the month in row-major order for a 7-column,
// Monday-first grid: LeadingBlankCells blanks, then one cell per day with
// that day's events and a today marker relative to now.
func BuildMonthGrid(year, month int, events []model.Event, now time.Time) []Cell {
	blanks := LeadingBlankCells(year, month)
	days := DaysInMonth(year, month)

	grid := make([]Cell, 0, blanks+days)
	for i := 0; i < blanks; i++ {
		grid = append(grid, Cell{})
	}
	for day := 1; day <= days; day++ {
		grid = append(grid, Cell{
			Day:     day,
			IsToday: day == now.Day() && month == int(now.Month())-1 && year == now.Year(),
			Events:  EventsOnDate(events, year, month, day),
		})
	}
	return grid
}

// MonthCursor is the calendar's navigation state: a zero-based month and an
// unbounded year. Navigation is purely cyclic.
type MonthCursor struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Prev moves the cursor one month back, wrapping January to the previous
// December.
func (c MonthCursor) Prev() MonthCursor {
	if c.Month == 0 {
		return MonthCursor{Month: 11, Year: c.Year - 1}
	}
	return MonthCursor{Month: c.Month - 1, Year: c.Year}
}

// Next moves the cursor one month forward, wrapping December to the next
// January.
func (c MonthCursor) Next() MonthCursor {
	if c.Month == 11 {
		return MonthCursor{Month: 0, Year: c.Year + 1}
	}
	return MonthCursor{Month: c.Month + 1, Year: c.Year}
}

// GoToToday resets the cursor to now's month and year.
func (c MonthCursor) GoToToday(now time.Time) MonthCursor {
	return MonthCursor{Month: int(now.Month()) - 1, Year: now.Year()}
}
