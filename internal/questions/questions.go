// Package questions holds the lawn trivia bank. The REST endpoint serves it
// whole and the Telegram bot draws single questions from it.
package questions

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
)

//go:embed questions.json
var raw []byte

// Question is a single trivia entry.
type Question struct {
	Title  string `json:"title"`
	Answer string `json:"answer"`
}

// Bank is an immutable collection of questions loaded at startup.
type Bank struct {
	questions []Question
}

// Load parses the embedded question bank.
func Load() (*Bank, error) {
	var qs []Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, fmt.Errorf("parse questions: %w", err)
	}
	if len(qs) == 0 {
		return nil, errors.New("question bank is empty")
	}
	return &Bank{questions: qs}, nil
}

// All returns every question in bank order.
func (b *Bank) All() []Question {
	return b.questions
}

// Random returns a uniformly random question.
func (b *Bank) Random() Question {
	return b.questions[rand.IntN(len(b.questions))]
}
