package handler

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AquaPirot/pirotskevesti/utils"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// GetHealth pings the database and reports liveness.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		log.Printf("Health check failed: %v", err)
		utils.InternalError(c, "Database unreachable")
		return
	}

	utils.Success(c, gin.H{"status": "ok"})
}
