package rest

import (
	"net/http"

	"github.com/lawndon/lawndon-backend/internal/questions"
)

// QuestionsHandler serves the trivia question bank.
type QuestionsHandler struct {
	bank *questions.Bank
}

// NewQuestionsHandler creates a QuestionsHandler.
func NewQuestionsHandler(bank *questions.Bank) *QuestionsHandler {
	return &QuestionsHandler{bank: bank}
}

// List serves the whole bank as a JSON array.
func (h *QuestionsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.bank.All())
}
