package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lawndon/lawndon-backend/internal/questions"
)

func TestQuestionsList_ServesWholeBank(t *testing.T) {
	t.Parallel()

	bank, err := questions.Load()
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}

	h := NewQuestionsHandler(bank)

	req := httptest.NewRequest(http.MethodGet, "/questions", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var got []questions.Question
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(got) != len(bank.All()) {
		t.Errorf("expected %d questions, got %d", len(bank.All()), len(got))
	}
}
