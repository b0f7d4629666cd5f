package model

import "time"

// User is a newsroom member (reporter, camera operator, contributor, agency).
// Users are created lazily the first time a record references their display
// name; the name is the lookup key and is never normalized.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
