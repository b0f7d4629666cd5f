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

type EventHandler struct {
	service *usecase.EventService
}

func NewEventHandler(service *usecase.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching events: %v", err)
		utils.InternalError(c, "Failed to fetch events")
		return
	}

	utils.Success(c, dto.ToEventResponses(events))
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req struct {
		Title    string         `json:"title" binding:"required"`
		Date     string         `json:"date" binding:"required,calendardate"`
		Time     string         `json:"time"`
		Priority model.Priority `json:"priority"`
		Notes    string         `json:"notes"`
		UserID   string         `json:"userId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, err := utils.ParseCalendarDate(req.Date)
	if err != nil {
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	event := &model.Event{
		Title:    req.Title,
		Date:     date,
		Time:     req.Time,
		Priority: req.Priority,
		Notes:    req.Notes,
	}

	if err := h.service.Create(c.Request.Context(), event, req.UserID); err != nil {
		log.Printf("Error creating event: %v", err)
		utils.InternalError(c, "Failed to create event")
		return
	}

	utils.Success(c, dto.ToEventResponse(event))
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		utils.BadRequest(c, "Missing event ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Event not found")
			return
		}
		log.Printf("Error deleting event %s: %v", eventID, err)
		utils.InternalError(c, "Failed to delete event")
		return
	}

	utils.Deleted(c, "Event deleted successfully")
}

func (h *EventHandler) GetUpcomingEvents(c *gin.Context) {
	events, err := h.service.Upcoming(c.Request.Context(), time.Now())
	if err != nil {
		log.Printf("Error fetching upcoming events: %v", err)
		utils.InternalError(c, "Failed to fetch events")
		return
	}

	utils.Success(c, dto.ToEventResponses(events))
}
