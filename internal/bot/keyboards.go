package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/trollfaceman/Telgrambot/internal/store"
)

// Reply-keyboard labels. Pressing one is equivalent to the matching
// slash command, and none of them may ever be stored as report text.
const (
	labelReport   = "📝 Отчёт"
	labelLookup   = "📖 Отчёты"
	labelReminder = "⏰ Напоминание"
)

func mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(labelReport),
			tgbotapi.NewKeyboardButton(labelLookup),
			tgbotapi.NewKeyboardButton(labelReminder),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// confirmKeyboard offers confirm/cancel for a first report of the day.
func (b *Bot) confirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Сохранить", b.callbacks.Put(action{Verb: verbConfirm})),
			tgbotapi.NewInlineKeyboardButtonData("❌ Отмена", b.callbacks.Put(action{Verb: verbCancel})),
		),
	)
}

// resolveKeyboard offers append/replace/cancel when today's report
// already exists.
func (b *Bot) resolveKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Дополнить", b.callbacks.Put(action{Verb: verbAppend})),
			tgbotapi.NewInlineKeyboardButtonData("✏️ Заменить", b.callbacks.Put(action{Verb: verbReplace})),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Отмена", b.callbacks.Put(action{Verb: verbCancel})),
		),
	)
}

// userKeyboard lists report authors, one button per user.
func (b *Bot) userKeyboard(users []store.UserRef) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(users))
	for _, u := range users {
		label := u.Username
		if label == "" {
			label = fmt.Sprintf("id %d", u.UserID)
		}
		data := b.callbacks.Put(action{Verb: verbUser, UserID: u.UserID})
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, data),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// dateKeyboard lists the last days for one author, newest first.
func (b *Bot) dateKeyboard(userID int64, dates []string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(dates))
	for _, d := range dates {
		data := b.callbacks.Put(action{Verb: verbDate, UserID: userID, Date: d})
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(d, data),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// reminderKeyboard offers whole hours for the daily prompt.
func (b *Bot) reminderKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for hour := 8; hour <= 22; hour++ {
		hhmm := fmt.Sprintf("%02d:00", hour)
		data := b.callbacks.Put(action{Verb: verbRemind, Value: hhmm})
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(hhmm, data))
		if len(row) == 5 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
