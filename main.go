package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/AquaPirot/pirotskevesti/handler"
	"github.com/AquaPirot/pirotskevesti/middleware"
	"github.com/AquaPirot/pirotskevesti/repository"
	"github.com/AquaPirot/pirotskevesti/services"
	"github.com/AquaPirot/pirotskevesti/usecase"
	"github.com/AquaPirot/pirotskevesti/utils"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	utils.InitValidator()
}

func setupRouter(db *gorm.DB, cache *services.ListCache) *gin.Engine {
	router := gin.Default()

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	taskRepo := repository.NewTaskRepo(db)
	eventRepo := repository.NewEventRepo(db)
	ideaRepo := repository.NewIdeaRepo(db)

	// Initialize services
	taskService := usecase.NewTaskService(taskRepo, userRepo, cache)
	eventService := usecase.NewEventService(eventRepo, userRepo, cache)
	ideaService := usecase.NewIdeaService(ideaRepo, userRepo, cache)

	// Initialize handlers
	taskHandler := handler.NewTaskHandler(taskService)
	eventHandler := handler.NewEventHandler(eventService)
	ideaHandler := handler.NewIdeaHandler(ideaService)
	calendarHandler := handler.NewCalendarHandler(eventService)
	statsHandler := handler.NewStatsHandler(userRepo, taskRepo, eventRepo, ideaRepo)
	healthHandler := handler.NewHealthHandler(db)

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RecoveryMiddleware())

	router.GET("/health", healthHandler.GetHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/today", taskHandler.GetTodaysTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		events := api.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.GET("/upcoming", eventHandler.GetUpcomingEvents)
			events.POST("", eventHandler.CreateEvent)
			events.DELETE("/:id", eventHandler.DeleteEvent)
		}

		ideas := api.Group("/ideas")
		{
			ideas.GET("", ideaHandler.ListIdeas)
			ideas.POST("", ideaHandler.CreateIdea)
			ideas.DELETE("/:id", ideaHandler.DeleteIdea)
		}

		api.GET("/calendar/:year/:month", calendarHandler.GetMonthGrid)
		api.GET("/meta", calendarHandler.GetMeta)
		api.GET("/stats", statsHandler.GetDashboardStats)
	}

	return router
}

func main() {
	db, err := repository.NewDB(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// The list cache is optional; without REDIS_URL every list hits SQLite.
	var cache *services.ListCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		ttl := utils.GetEnvAsDuration("CACHE_TTL", 5*time.Minute)
		cache, err = services.NewListCache(redisURL, ttl)
		if err != nil {
			log.Printf("List cache disabled: %v", err)
			cache = nil
		}
	}

	router := setupRouter(db, cache)

	port := utils.GetEnvAsString("PORT", "8080")
	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
