// Package bot runs the lawn trivia Telegram bot. It draws questions from
// the embedded bank and keeps the last issued answer per chat, so /answer
// reveals what /question asked.
package bot

import (
	"fmt"
	"log/slog"
	"sync"

	tele "gopkg.in/telebot.v3"

	"github.com/lawndon/lawndon-backend/internal/config"
	"github.com/lawndon/lawndon-backend/internal/questions"
)

const (
	welcomeText = "Welcome to Lawndon Bot"
	infoText    = "Lawndon.IO - Transforming lawncare, rooted in excellence."
	introText   = "Ok, try to answer on it by yourself"

	helpText = `Use /question to generate new question
Command /answer to see right answer
Use /info to get data about platform`
)

// Bot wraps the telebot long poller and the trivia handlers.
type Bot struct {
	tele      *tele.Bot
	bank      *questions.Bank
	log       *slog.Logger
	webAppURL string

	mu      sync.Mutex
	answers map[int64]string
}

// New connects to the Telegram API and registers all command handlers.
// It does not start polling; call Start for that.
func New(cfg config.BotConfig, bank *questions.Bank, log *slog.Logger) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: cfg.PollInterval},
		OnError: func(err error, c tele.Context) {
			log.Error("bot update failed", slog.String("error", err.Error()))
		},
	}

	tb, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	b := &Bot{
		tele:      tb,
		bank:      bank,
		log:       log.With("component", "bot"),
		webAppURL: cfg.WebAppURL,
		answers:   make(map[int64]string),
	}
	b.register()

	return b, nil
}

// Start begins long polling. It blocks until Stop is called.
func (b *Bot) Start() {
	b.log.Info("bot started", slog.String("username", b.tele.Me.Username))
	b.tele.Start()
}

// Stop terminates the poller.
func (b *Bot) Stop() {
	b.tele.Stop()
}

func (b *Bot) register() {
	b.tele.Handle("/start", b.handleStart)
	b.tele.Handle("/help", b.handleHelp)
	b.tele.Handle("/question", b.handleQuestion)
	b.tele.Handle("/answer", b.handleAnswer)
	b.tele.Handle("/info", b.handleInfo)
}

func (b *Bot) handleStart(c tele.Context) error {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(menu.Row(
		menu.WebApp("Platform", &tele.WebApp{URL: b.webAppURL}),
	))
	return c.Send(welcomeText, menu)
}

func (b *Bot) handleHelp(c tele.Context) error {
	return c.Send(helpText)
}

func (b *Bot) handleQuestion(c tele.Context) error {
	q := b.bank.Random()
	b.remember(c.Chat().ID, q.Answer)

	if err := c.Send(introText); err != nil {
		return err
	}
	return c.Send(q.Title)
}

func (b *Bot) handleAnswer(c tele.Context) error {
	return c.Send("Answer - " + b.lastAnswer(c.Chat().ID))
}

func (b *Bot) handleInfo(c tele.Context) error {
	return c.Send(infoText)
}

func (b *Bot) remember(chatID int64, answer string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.answers[chatID] = answer
}

// lastAnswer returns the answer of the last question issued to the chat,
// or the empty string if none was issued yet.
func (b *Bot) lastAnswer(chatID int64) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.answers[chatID]
}
