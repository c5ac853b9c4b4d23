package bot

import (
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/trollfaceman/Telgrambot/internal/store"
)

// recentDays is the width of the date picker window.
const recentDays = 7

// handleLookupCommand starts the two-step picker: user, then date.
// The flow is stateless; each step is carried entirely by callback
// tokens.
func (b *Bot) handleLookupCommand(msg *tgbotapi.Message) {
	users, err := b.store.ListUsers()
	if err != nil {
		b.sendStoreError(msg.Chat.ID, "lookup: list users", err)
		return
	}
	if len(users) == 0 {
		b.sendText(msg.Chat.ID, "❌ Отчётов пока нет.")
		return
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, "Выбери пользователя:")
	reply.ReplyMarkup = b.userKeyboard(users)
	b.send(reply)
}

// handleUserCallback offers the last days for the picked author. The
// dates are generated, not queried, so a pick may find no report.
func (b *Bot) handleUserCallback(cq *tgbotapi.CallbackQuery, act action) {
	dates := store.RecentDates(b.now().In(b.cfg.LocalTimezone), recentDays)
	reply := tgbotapi.NewMessage(cq.Message.Chat.ID, "Выбери дату:")
	reply.ReplyMarkup = b.dateKeyboard(act.UserID, dates)
	b.send(reply)
}

func (b *Bot) handleDateCallback(cq *tgbotapi.CallbackQuery, act action) {
	chatID := cq.Message.Chat.ID

	text, err := b.store.GetReport(act.UserID, act.Date)
	if errors.Is(err, store.ErrNoReport) {
		b.sendText(chatID, "❌ За "+act.Date+" отчёта нет.")
		return
	}
	if err != nil {
		b.sendStoreError(chatID, "lookup: get report", err)
		return
	}
	b.sendText(chatID, "📜 Отчёт за "+act.Date+":\n\n"+text)
}
