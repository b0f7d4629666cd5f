package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/AquaPirot/pirotskevesti/dto"
)

func TestCreateTaskResolvesOwner(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/tasks", map[string]interface{}{
		"description": "Prilog o vodovodu",
		"category":    "ARTICLE",
		"userId":      "Novinar",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var task dto.TaskResponse
	decodeData(t, w, &task)
	if task.ID == "" {
		t.Error("created task has no ID")
	}
	if task.User.Name != "Novinar" {
		t.Errorf("expected owner Novinar, got %q", task.User.Name)
	}
	if task.Status != "IN_PROGRESS" {
		t.Errorf("expected default status IN_PROGRESS, got %q", task.Status)
	}
	if task.Date.IsZero() {
		t.Error("task date should default to creation time")
	}

	// Second task under the same display name reuses the user
	w = doJSON(t, router, http.MethodPost, "/api/tasks", map[string]interface{}{
		"description": "Drugi prilog",
		"category":    "VIDEO",
		"userId":      "Novinar",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var second dto.TaskResponse
	decodeData(t, w, &second)
	if second.User.ID != task.User.ID {
		t.Errorf("same display name resolved to a different user: %s vs %s", second.User.ID, task.User.ID)
	}
}

func TestCreateTaskRequiresUserID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/tasks", map[string]interface{}{
		"description": "bez autora",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateTaskRejectsMalformedDate(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/tasks", map[string]interface{}{
		"description": "los datum",
		"date":        "10.03.2024",
		"userId":      "Novinar",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListTasksNewestFirst(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, desc := range []string{"prvi", "drugi"} {
		w := doJSON(t, router, http.MethodPost, "/api/tasks", map[string]interface{}{
			"description": desc,
			"userId":      "Novinar",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		time.Sleep(5 * time.Millisecond) // distinct created_at
	}

	w := doJSON(t, router, http.MethodGet, "/api/tasks", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var tasks []dto.TaskResponse
	decodeData(t, w, &tasks)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Description != "drugi" || tasks[1].Description != "prvi" {
		t.Errorf("expected newest first, got [%s %s]", tasks[0].Description, tasks[1].Description)
	}
}

func TestDeleteTaskTwice(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/tasks", map[string]interface{}{
		"description": "za brisanje",
		"userId":      "Novinar",
	})
	var task dto.TaskResponse
	decodeData(t, w, &task)

	w = doJSON(t, router, http.MethodDelete, "/api/tasks/"+task.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("first delete: expected 200, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/tasks/"+task.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", w.Code)
	}
}

func TestGetTodaysTasks(t *testing.T) {
	router, _ := newTestRouter(t)

	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	for desc, date := range map[string]string{"danas": today, "juce": yesterday} {
		w := doJSON(t, router, http.MethodPost, "/api/tasks", map[string]interface{}{
			"description": desc,
			"date":        date,
			"userId":      "Novinar",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	}

	w := doJSON(t, router, http.MethodGet, "/api/tasks/today", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var tasks []dto.TaskResponse
	decodeData(t, w, &tasks)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task today, got %d", len(tasks))
	}
	if tasks[0].Description != "danas" {
		t.Errorf("expected danas, got %q", tasks[0].Description)
	}
}
