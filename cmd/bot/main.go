// Command bot runs the Lawndon trivia Telegram bot. It shares the question
// bank with the API server but needs no database.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lawndon/lawndon-backend/internal/app"
	"github.com/lawndon/lawndon-backend/internal/bot"
	"github.com/lawndon/lawndon-backend/internal/config"
	"github.com/lawndon/lawndon-backend/internal/questions"
)

func main() {
	cfg, err := config.LoadBot()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	bank, err := questions.Load()
	if err != nil {
		logger.Error("load question bank", slog.String("error", err.Error()))
		os.Exit(1)
	}

	b, err := bot.New(cfg.Bot, bank, logger)
	if err != nil {
		logger.Error("create bot", slog.String("error", err.Error()))
		os.Exit(1)
	}

	go b.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	b.Stop()
	logger.Info("bot stopped")
}
