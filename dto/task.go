package dto

import (
	"time"

	"github.com/AquaPirot/pirotskevesti/model"
)

type TaskResponse struct {
	ID          string             `json:"id"`
	Description string             `json:"description"`
	Link        string             `json:"link,omitempty"`
	Category    model.TaskCategory `json:"category"`
	Status      model.TaskStatus   `json:"status"`
	Notes       string             `json:"notes,omitempty"`
	Date        time.Time          `json:"date"`
	CreatedAt   time.Time          `json:"created_at"`
	User        UserResponse       `json:"user"`
}

// Convert model.Task to TaskResponse
func ToTaskResponse(task *model.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Description: task.Description,
		Link:        task.Link,
		Category:    task.Category,
		Status:      task.Status,
		Notes:       task.Notes,
		Date:        task.Date,
		CreatedAt:   task.CreatedAt,
		User:        ToUserResponse(task.User),
	}
}

// Convert slice of model.Task to slice of TaskResponse
func ToTaskResponses(tasks []model.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = ToTaskResponse(&tasks[i])
	}
	return responses
}
