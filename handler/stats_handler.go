package handler

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AquaPirot/pirotskevesti/model"
	"github.com/AquaPirot/pirotskevesti/repository"
	"github.com/AquaPirot/pirotskevesti/schedule"
	"github.com/AquaPirot/pirotskevesti/utils"
)

type StatsHandler struct {
	userRepo  *repository.UserRepo
	taskRepo  *repository.TaskRepo
	eventRepo *repository.EventRepo
	ideaRepo  *repository.IdeaRepo
}

func NewStatsHandler(
	userRepo *repository.UserRepo,
	taskRepo *repository.TaskRepo,
	eventRepo *repository.EventRepo,
	ideaRepo *repository.IdeaRepo,
) *StatsHandler {
	return &StatsHandler{
		userRepo:  userRepo,
		taskRepo:  taskRepo,
		eventRepo: eventRepo,
		ideaRepo:  ideaRepo,
	}
}

// GetDashboardStats aggregates the counters behind the dashboard's summary
// cards plus basic host readings.
func (h *StatsHandler) GetDashboardStats(c *gin.Context) {
	ctx := c.Request.Context()

	var stats model.DashboardStats

	taskCounts, err := h.taskRepo.CountByStatus(ctx)
	if err != nil {
		log.Printf("Error counting tasks: %v", err)
		utils.InternalError(c, "Failed to count tasks")
		return
	}
	stats.TaskStats.InProgress = taskCounts[model.StatusInProgress]
	stats.TaskStats.Completed = taskCounts[model.StatusCompleted]
	stats.TaskStats.Published = taskCounts[model.StatusPublished]
	for _, count := range taskCounts {
		stats.TaskStats.Total += count
	}

	events, err := h.eventRepo.List(ctx)
	if err != nil {
		log.Printf("Error fetching events: %v", err)
		utils.InternalError(c, "Failed to fetch events")
		return
	}
	stats.EventStats.Total = len(events)
	now := time.Now()
	for _, e := range events {
		if schedule.IsUpcoming(e.Date, now) {
			stats.EventStats.Upcoming++
		}
	}

	eventPriorities, err := h.eventRepo.CountByPriority(ctx)
	if err != nil {
		log.Printf("Error counting events: %v", err)
		utils.InternalError(c, "Failed to count events")
		return
	}
	stats.EventStats.ByPriority = eventPriorities

	ideaPriorities, err := h.ideaRepo.CountByPriority(ctx)
	if err != nil {
		log.Printf("Error counting ideas: %v", err)
		utils.InternalError(c, "Failed to count ideas")
		return
	}
	stats.IdeaStats.ByPriority = ideaPriorities
	for _, count := range ideaPriorities {
		stats.IdeaStats.Total += count
	}

	userCount, err := h.userRepo.Count(ctx)
	if err != nil {
		log.Printf("Error counting users: %v", err)
		utils.InternalError(c, "Failed to count users")
		return
	}
	stats.UserStats.Total = userCount

	stats.SystemStats.CPUUsagePercent = utils.GetCPUUsage()
	stats.SystemStats.MemoryUsedMB = utils.GetMemoryUsedMB()

	utils.Success(c, stats)
}
