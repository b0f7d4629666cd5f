package dto

import (
	"time"

	"github.com/AquaPirot/pirotskevesti/model"
)

type EventResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Date      time.Time      `json:"date"`
	Time      string         `json:"time,omitempty"`
	Priority  model.Priority `json:"priority"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	User      UserResponse   `json:"user"`
}

// Convert model.Event to EventResponse
func ToEventResponse(event *model.Event) EventResponse {
	return EventResponse{
		ID:        event.ID,
		Title:     event.Title,
		Date:      event.Date,
		Time:      event.Time,
		Priority:  event.Priority,
		Notes:     event.Notes,
		CreatedAt: event.CreatedAt,
		User:      ToUserResponse(event.User),
	}
}

// Convert slice of model.Event to slice of EventResponse
func ToEventResponses(events []model.Event) []EventResponse {
	responses := make([]EventResponse, len(events))
	for i := range events {
		responses[i] = ToEventResponse(&events[i])
	}
	return responses
}
