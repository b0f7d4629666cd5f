package handler

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AquaPirot/pirotskevesti/model"
	"github.com/AquaPirot/pirotskevesti/schedule"
	"github.com/AquaPirot/pirotskevesti/usecase"
	"github.com/AquaPirot/pirotskevesti/utils"
)

type CalendarHandler struct {
	events *usecase.EventService
}

func NewCalendarHandler(events *usecase.EventService) *CalendarHandler {
	return &CalendarHandler{events: events}
}

// GetMonthGrid returns the 7-column month layout for /calendar/:year/:month.
// Month is zero-based, matching the cursor the dashboard keeps. The prev and
// next cursors are included so the client can navigate without repeating the
// wrap-around math.
func (h *CalendarHandler) GetMonthGrid(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		utils.BadRequest(c, "Invalid year")
		return
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 0 || month > 11 {
		utils.BadRequest(c, "Invalid month, expected 0-11")
		return
	}

	cells, err := h.events.MonthGrid(c.Request.Context(), year, month, time.Now())
	if err != nil {
		log.Printf("Error building month grid %d-%d: %v", year, month, err)
		utils.InternalError(c, "Failed to build calendar")
		return
	}

	cursor := schedule.MonthCursor{Month: month, Year: year}
	utils.Success(c, gin.H{
		"cursor":         cursor,
		"prev":           cursor.Prev(),
		"next":           cursor.Next(),
		"today":          cursor.GoToToday(time.Now()),
		"leading_blanks": schedule.LeadingBlankCells(year, month),
		"days_in_month":  schedule.DaysInMonth(year, month),
		"cells":          cells,
	})
}

// GetMeta serves the label sets backing the dashboard's select inputs.
func (h *CalendarHandler) GetMeta(c *gin.Context) {
	utils.Success(c, gin.H{
		"categories": model.Categories,
		"statuses":   model.Statuses,
		"priorities": model.Priorities,
		"roles":      model.Roles,
	})
}
