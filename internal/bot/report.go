package bot

import (
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/trollfaceman/Telgrambot/internal/store"
)

// handleReportCommand starts the submit flow. Commands and menu labels
// are routed before free text, so reserved input can never end up in a
// draft.
func (b *Bot) handleReportCommand(msg *tgbotapi.Message) {
	userID := msg.From.ID

	existing, err := b.store.GetReport(userID, b.today())
	switch {
	case errors.Is(err, store.ErrNoReport):
		b.sendText(msg.Chat.ID, "Напиши, что ты сделал сегодня:")
	case err != nil:
		b.sendStoreError(msg.Chat.ID, "report: get", err)
		return
	default:
		b.sendText(msg.Chat.ID, "За сегодня уже есть отчёт:\n\n"+existing+
			"\n\nПришли новый текст — его можно будет дополнить или заменить.")
	}
	b.sessions.StartDrafting(userID)
}

// handleText receives free text. In the drafting stages it becomes the
// current draft and the user is asked to resolve it explicitly; a new
// draft silently replaces an unconfirmed one. Nothing is persisted
// here.
func (b *Bot) handleText(msg *tgbotapi.Message) {
	userID := msg.From.ID
	sess := b.sessions.Get(userID)

	if sess.Stage == stageIdle {
		b.sendText(msg.Chat.ID, "Чтобы отправить отчёт, нажми «"+labelReport+"» или /report.")
		return
	}

	draft := msg.Text
	_, err := b.store.GetReport(userID, b.today())
	switch {
	case errors.Is(err, store.ErrNoReport):
		b.sessions.SetConfirming(userID, draft)
		reply := tgbotapi.NewMessage(msg.Chat.ID, "Сохранить этот отчёт?\n\n"+draft)
		reply.ReplyMarkup = b.confirmKeyboard()
		b.send(reply)
	case err != nil:
		b.sendStoreError(msg.Chat.ID, "report: check existing", err)
	default:
		b.sessions.SetConfirming(userID, draft)
		reply := tgbotapi.NewMessage(msg.Chat.ID, "За сегодня уже есть отчёт. Дополнить его или заменить?\n\n"+draft)
		reply.ReplyMarkup = b.resolveKeyboard()
		b.send(reply)
	}
}

// handleResolveCallback commits or discards the pending draft. Every
// branch ends in the idle state; failures are reported once and never
// retried.
func (b *Bot) handleResolveCallback(cq *tgbotapi.CallbackQuery, act action) {
	userID := cq.From.ID
	chatID := cq.Message.Chat.ID

	sess := b.sessions.Get(userID)
	if sess.Stage != stageConfirming || sess.Draft == "" {
		b.sendText(chatID, "⚠️ Черновик не найден, начни заново с /report.")
		b.sessions.Reset(userID)
		return
	}
	b.sessions.Reset(userID)

	switch act.Verb {
	case verbCancel:
		b.sendText(chatID, "❌ Отменено, отчёт не изменён.")

	case verbConfirm:
		if err := b.store.SaveReport(userID, displayName(cq.From), b.today(), sess.Draft); err != nil {
			b.sendStoreError(chatID, "report: save", err)
			return
		}
		b.sendText(chatID, "✅ Отчёт сохранён!")

	case verbAppend:
		err := b.store.AppendReport(userID, b.today(), sess.Draft)
		if errors.Is(err, store.ErrNoReport) {
			b.sendText(chatID, "⚠️ Отчёта за сегодня уже нет, дополнять нечего. Начни заново с /report.")
			return
		}
		if err != nil {
			b.sendStoreError(chatID, "report: append", err)
			return
		}
		b.sendText(chatID, "➕ Отчёт дополнен!")

	case verbReplace:
		// Replace is an explicit delete-then-recreate of today's row.
		if err := b.store.DeleteReport(userID, b.today()); err != nil {
			b.sendStoreError(chatID, "report: clear", err)
			return
		}
		if err := b.store.SaveReport(userID, displayName(cq.From), b.today(), sess.Draft); err != nil {
			b.sendStoreError(chatID, "report: replace", err)
			return
		}
		b.sendText(chatID, "✏️ Отчёт заменён!")
	}
}
