package model

import "time"

// DefaultIdeaCategory is the free-text category applied when the client
// omits one ("Priča" — "story").
const DefaultIdeaCategory = "Priča"

// Idea is a banked story idea.
type Idea struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index;not null" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"user"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    Priority  `json:"priority"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}
