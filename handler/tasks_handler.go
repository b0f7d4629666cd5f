package handler

import (
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AquaPirot/pirotskevesti/dto"
	"github.com/AquaPirot/pirotskevesti/model"
	"github.com/AquaPirot/pirotskevesti/usecase"
	"github.com/AquaPirot/pirotskevesti/utils"
)

type TaskHandler struct {
	service *usecase.TaskService
}

func NewTaskHandler(service *usecase.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching tasks: %v", err)
		utils.InternalError(c, "Failed to fetch tasks")
		return
	}

	utils.Success(c, dto.ToTaskResponses(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	// UserID carries the owner's display name, not a surrogate key; the
	// service resolves or creates the user from it.
	var req struct {
		Description string             `json:"description"`
		Link        string             `json:"link"`
		Category    model.TaskCategory `json:"category"`
		Status      model.TaskStatus   `json:"status"`
		Notes       string             `json:"notes"`
		Date        string             `json:"date" binding:"omitempty,calendardate"`
		UserID      string             `json:"userId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	task := &model.Task{
		Description: req.Description,
		Link:        req.Link,
		Category:    req.Category,
		Status:      req.Status,
		Notes:       req.Notes,
	}
	if req.Date != "" {
		date, err := utils.ParseCalendarDate(req.Date)
		if err != nil {
			utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		task.Date = date
	}

	if err := h.service.Create(c.Request.Context(), task, req.UserID); err != nil {
		log.Printf("Error creating task: %v", err)
		utils.InternalError(c, "Failed to create task")
		return
	}

	utils.Success(c, dto.ToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		utils.BadRequest(c, "Missing task ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Task not found")
			return
		}
		log.Printf("Error deleting task %s: %v", taskID, err)
		utils.InternalError(c, "Failed to delete task")
		return
	}

	utils.Deleted(c, "Task deleted successfully")
}

func (h *TaskHandler) GetTodaysTasks(c *gin.Context) {
	tasks, err := h.service.TodaysTasks(c.Request.Context(), time.Now())
	if err != nil {
		log.Printf("Error fetching today's tasks: %v", err)
		utils.InternalError(c, "Failed to fetch tasks")
		return
	}

	utils.Success(c, dto.ToTaskResponses(tasks))
}
