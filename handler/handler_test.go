package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AquaPirot/pirotskevesti/repository"
	"github.com/AquaPirot/pirotskevesti/usecase"
	"github.com/AquaPirot/pirotskevesti/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitValidator()
}

// newTestRouter wires the full API against a fresh in-memory database.
// The DSN is named per test because a bare :memory: would give each pooled
// connection its own empty database. The list cache is nil: reads go
// straight to SQLite.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := repository.NewDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	userRepo := repository.NewUserRepo(db)
	taskRepo := repository.NewTaskRepo(db)
	eventRepo := repository.NewEventRepo(db)
	ideaRepo := repository.NewIdeaRepo(db)

	taskHandler := NewTaskHandler(usecase.NewTaskService(taskRepo, userRepo, nil))
	eventHandler := NewEventHandler(usecase.NewEventService(eventRepo, userRepo, nil))
	ideaHandler := NewIdeaHandler(usecase.NewIdeaService(ideaRepo, userRepo, nil))
	calendarHandler := NewCalendarHandler(usecase.NewEventService(eventRepo, userRepo, nil))

	router := gin.New()
	api := router.Group("/api")
	{
		api.GET("/tasks", taskHandler.ListTasks)
		api.GET("/tasks/today", taskHandler.GetTodaysTasks)
		api.POST("/tasks", taskHandler.CreateTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)

		api.GET("/events", eventHandler.ListEvents)
		api.GET("/events/upcoming", eventHandler.GetUpcomingEvents)
		api.POST("/events", eventHandler.CreateEvent)
		api.DELETE("/events/:id", eventHandler.DeleteEvent)

		api.GET("/ideas", ideaHandler.ListIdeas)
		api.POST("/ideas", ideaHandler.CreateIdea)
		api.DELETE("/ideas/:id", ideaHandler.DeleteIdea)

		api.GET("/calendar/:year/:month", calendarHandler.GetMonthGrid)
		api.GET("/meta", calendarHandler.GetMeta)
	}

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("Failed to decode response envelope: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		t.Fatalf("Failed to decode response data: %v", err)
	}
}
