package dto

import (
	"time"

	"github.com/AquaPirot/pirotskevesti/model"
)

type IdeaResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Priority    model.Priority `json:"priority"`
	Category    string         `json:"category"`
	CreatedAt   time.Time      `json:"created_at"`
	User        UserResponse   `json:"user"`
}

// Convert model.Idea to IdeaResponse
func ToIdeaResponse(idea *model.Idea) IdeaResponse {
	return IdeaResponse{
		ID:          idea.ID,
		Title:       idea.Title,
		Description: idea.Description,
		Priority:    idea.Priority,
		Category:    idea.Category,
		CreatedAt:   idea.CreatedAt,
		User:        ToUserResponse(idea.User),
	}
}

// Convert slice of model.Idea to slice of IdeaResponse
func ToIdeaResponses(ideas []model.Idea) []IdeaResponse {
	responses := make([]IdeaResponse, len(ideas))
	for i := range ideas {
		responses[i] = ToIdeaResponse(&ideas[i])
	}
	return responses
}
