package handler

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AquaPirot/pirotskevesti/dto"
	"github.com/AquaPirot/pirotskevesti/model"
	"github.com/AquaPirot/pirotskevesti/usecase"
	"github.com/AquaPirot/pirotskevesti/utils"
)

type IdeaHandler struct {
	service *usecase.IdeaService
}

func NewIdeaHandler(service *usecase.IdeaService) *IdeaHandler {
	return &IdeaHandler{service: service}
}

func (h *IdeaHandler) ListIdeas(c *gin.Context) {
	ideas, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching ideas: %v", err)
		utils.InternalError(c, "Failed to fetch ideas")
		return
	}

	utils.Success(c, dto.ToIdeaResponses(ideas))
}

func (h *IdeaHandler) CreateIdea(c *gin.Context) {
	var req struct {
		Title       string         `json:"title" binding:"required"`
		Description string         `json:"description"`
		Priority    model.Priority `json:"priority"`
		Category    string         `json:"category"`
		UserID      string         `json:"userId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	idea := &model.Idea{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Category:    req.Category,
	}

	if err := h.service.Create(c.Request.Context(), idea, req.UserID); err != nil {
		log.Printf("Error creating idea: %v", err)
		utils.InternalError(c, "Failed to create idea")
		return
	}

	utils.Success(c, dto.ToIdeaResponse(idea))
}

func (h *IdeaHandler) DeleteIdea(c *gin.Context) {
	ideaID := c.Param("id")
	if ideaID == "" {
		utils.BadRequest(c, "Missing idea ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), ideaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Idea not found")
			return
		}
		log.Printf("Error deleting idea %s: %v", ideaID, err)
		utils.InternalError(c, "Failed to delete idea")
		return
	}

	utils.Deleted(c, "Idea deleted successfully")
}
