package bot

import (
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/robfig/cron/v3"
	"github.com/trollfaceman/Telgrambot/internal/config"
	"github.com/trollfaceman/Telgrambot/internal/store"
)

// sender is the slice of the Telegram API the bot uses. Satisfied by
// *tgbotapi.BotAPI; tests substitute a recording fake.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

const callbackTTL = time.Hour

// Bot coordinates report persistence, the conversation flows, and the
// reminder scheduler.
type Bot struct {
	cfg       *config.Config
	api       sender
	store     *store.Store
	cron      *cron.Cron
	sessions  *sessionStore
	callbacks *callbackRegistry
	logger    *log.Logger
	now       func() time.Time
}

// New creates a fully configured Bot instance.
func New(cfg *config.Config, api sender, st *store.Store, logger *log.Logger) *Bot {
	return &Bot{
		cfg:       cfg,
		api:       api,
		store:     st,
		cron:      cron.New(cron.WithLocation(cfg.LocalTimezone)),
		sessions:  newSessionStore(cfg.SessionTTL),
		callbacks: newCallbackRegistry(callbackTTL),
		logger:    logger,
		now:       time.Now,
	}
}

// HandleUpdate dispatches one incoming update. Updates are handled one
// at a time; ordering across different users is not guaranteed.
func (b *Bot) HandleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallback(update.CallbackQuery)
		return
	}
	if update.Message != nil {
		b.handleMessage(update.Message)
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.handleStart(msg)
		case "help":
			b.handleHelp(msg)
		case "report":
			b.handleReportCommand(msg)
		case "get":
			b.handleLookupCommand(msg)
		case "reminder":
			b.handleReminderCommand(msg)
		default:
			// Unknown commands are ignored gracefully.
		}
		return
	}

	switch msg.Text {
	case labelReport:
		b.handleReportCommand(msg)
		return
	case labelLookup:
		b.handleLookupCommand(msg)
		return
	case labelReminder:
		b.handleReminderCommand(msg)
		return
	}

	if strings.TrimSpace(msg.Text) == "" {
		return
	}
	b.handleText(msg)
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) {
	if cq.From == nil || cq.Message == nil {
		return
	}

	act, ok := b.callbacks.Resolve(cq.Data)
	if !ok {
		b.answerCallback(cq.ID, "⚠️ Кнопка устарела, начни заново.")
		return
	}
	b.answerCallback(cq.ID, "")

	switch act.Verb {
	case verbConfirm, verbCancel, verbAppend, verbReplace:
		b.handleResolveCallback(cq, act)
	case verbUser:
		b.handleUserCallback(cq, act)
	case verbDate:
		b.handleDateCallback(cq, act)
	case verbRemind:
		b.handleRemindCallback(cq, act)
	}
}

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	text := "Привет! Я буду спрашивать тебя каждый день, что ты делал. Используй /help для справки."
	reply := tgbotapi.NewMessage(msg.Chat.ID, text)
	reply.ReplyMarkup = mainKeyboard()
	b.send(reply)
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) {
	text := "📌 Доступные команды:\n" +
		"✅ /report — создать или обновить отчёт за сегодня\n" +
		"✅ /get — посмотреть отчёты\n" +
		"✅ /reminder — настроить время напоминания\n" +
		"✅ /help — показать справку"
	b.send(tgbotapi.NewMessage(msg.Chat.ID, text))
}

// today returns the current date string in the bot's timezone.
func (b *Bot) today() string {
	return b.now().In(b.cfg.LocalTimezone).Format(store.DateLayout)
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.logger.Printf("send: %v", err)
	}
}

func (b *Bot) sendText(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

// answerCallback acks a callback query so the client stops the loading
// animation; text, when set, is shown as a toast.
func (b *Bot) answerCallback(id, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(id, text)); err != nil {
		b.logger.Printf("callback ack: %v", err)
	}
}

// sendStoreError surfaces a persistence failure as a generic retry
// message; the detail stays in the log.
func (b *Bot) sendStoreError(chatID int64, context string, err error) {
	b.logger.Printf("%s: %v", context, err)
	b.sendText(chatID, "😔 Что-то пошло не так, попробуй позже.")
}

func displayName(user *tgbotapi.User) string {
	if user.UserName != "" {
		return user.UserName
	}
	return strings.TrimSpace(user.FirstName + " " + user.LastName)
}
