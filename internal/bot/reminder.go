package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleReminderCommand offers the hour picker for the daily prompt.
func (b *Bot) handleReminderCommand(msg *tgbotapi.Message) {
	reply := tgbotapi.NewMessage(msg.Chat.ID, "Во сколько напоминать об отчёте?")
	reply.ReplyMarkup = b.reminderKeyboard()
	b.send(reply)
}

// handleRemindCallback upserts the picked time, so a user always holds
// at most one reminder.
func (b *Bot) handleRemindCallback(cq *tgbotapi.CallbackQuery, act action) {
	chatID := cq.Message.Chat.ID

	if err := b.store.SetReminder(cq.From.ID, act.Value); err != nil {
		b.sendStoreError(chatID, "reminder: set", err)
		return
	}
	b.sendText(chatID, "⏰ Буду напоминать каждый день в "+act.Value+".")
}
