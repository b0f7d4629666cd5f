package model

import "time"

type TaskCategory string
type TaskStatus string

const (
	CategoryArticle     TaskCategory = "ARTICLE"
	CategoryVideo       TaskCategory = "VIDEO"
	CategoryInterview   TaskCategory = "INTERVIEW"
	CategoryResearch    TaskCategory = "RESEARCH"
	CategoryEditing     TaskCategory = "EDITING"
	CategorySocialMedia TaskCategory = "SOCIAL_MEDIA"
	CategoryOther       TaskCategory = "OTHER"

	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
	StatusPublished  TaskStatus = "PUBLISHED"
)

// Task is a logged piece of newsroom work. Tasks are created and deleted,
// never updated.
type Task struct {
	ID          string       `gorm:"primaryKey" json:"id"`
	UserID      string       `gorm:"index;not null" json:"user_id"`
	User        User         `gorm:"foreignKey:UserID" json:"user"`
	Description string       `json:"description"`
	Link        string       `json:"link,omitempty"`
	Category    TaskCategory `json:"category"`
	Status      TaskStatus   `json:"status"`
	Notes       string       `json:"notes,omitempty"`
	Date        time.Time    `json:"date"`
	CreatedAt   time.Time    `json:"created_at"`
}
