package handler

import (
	"net/http"
	"testing"

	"github.com/AquaPirot/pirotskevesti/dto"
)

func TestCreateIdeaDefaults(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/ideas", map[string]interface{}{
		"title":  "Reportaža sa pijace",
		"userId": "Saradnik",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var idea dto.IdeaResponse
	decodeData(t, w, &idea)
	if idea.Priority != "MEDIUM" {
		t.Errorf("expected default priority MEDIUM, got %q", idea.Priority)
	}
	if idea.Category != "Priča" {
		t.Errorf("expected default category Priča, got %q", idea.Category)
	}
	if idea.User.Name != "Saradnik" {
		t.Errorf("expected owner Saradnik, got %q", idea.User.Name)
	}
}

func TestCreateIdeaRequiresTitle(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/ideas", map[string]interface{}{
		"description": "bez naslova",
		"userId":      "Saradnik",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDeleteIdeaTwice(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/ideas", map[string]interface{}{
		"title":  "za brisanje",
		"userId": "Saradnik",
	})
	var idea dto.IdeaResponse
	decodeData(t, w, &idea)

	w = doJSON(t, router, http.MethodDelete, "/api/ideas/"+idea.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("first delete: expected 200, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/ideas/"+idea.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", w.Code)
	}
}
