package model

import "time"

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Event is a scheduled calendar entry. Date carries the calendar day;
// Time is an optional free-form clock string ("14:30") kept separate so
// the calendar math stays date-only.
type Event struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Title     string    `gorm:"not null" json:"title"`
	Date      time.Time `gorm:"index;not null" json:"date"`
	Time      string    `json:"time,omitempty"`
	Priority  Priority  `json:"priority"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
