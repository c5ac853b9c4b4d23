package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const promptText = "Че делаешь? 🧐 Не забудь отправить отчёт: /report"

// StartScheduler registers the reminder jobs and starts the scheduler
// loop: a minute sweep for custom reminder times, a daily prompt for
// everyone without one, and session cleanup.
func (b *Bot) StartScheduler() error {
	if _, err := b.cron.AddFunc("* * * * *", b.sweepReminders); err != nil {
		return err
	}
	if _, err := b.cron.AddFunc(fmt.Sprintf("0 %d * * *", b.cfg.PromptHour), b.sendDailyPrompts); err != nil {
		return err
	}
	if _, err := b.cron.AddFunc("*/10 * * * *", b.sessions.Cleanup); err != nil {
		return err
	}
	b.cron.Start()
	return nil
}

// StopScheduler stops the cron scheduler gracefully.
func (b *Bot) StopScheduler() {
	ctx := b.cron.Stop()
	<-ctx.Done()
}

// sweepReminders prompts every user whose custom reminder matches the
// current wall-clock minute.
func (b *Bot) sweepReminders() {
	hhmm := b.now().In(b.cfg.LocalTimezone).Format("15:04")
	users, err := b.store.DueReminders(hhmm)
	if err != nil {
		b.logger.Printf("notifier: due reminders: %v", err)
		return
	}
	b.broadcast(users)
}

// sendDailyPrompts prompts every known report author that never picked
// a custom time.
func (b *Bot) sendDailyPrompts() {
	users, err := b.store.UsersWithoutReminder()
	if err != nil {
		b.logger.Printf("notifier: fetch users: %v", err)
		return
	}
	b.broadcast(users)
}

// broadcast sends the prompt to each user; a failed delivery (for
// example a user that blocked the bot) is logged and skipped so the
// remaining users are still reached.
func (b *Bot) broadcast(users []int64) {
	for _, userID := range users {
		if _, err := b.api.Send(tgbotapi.NewMessage(userID, promptText)); err != nil {
			b.logger.Printf("notifier: send to %d: %v", userID, err)
		}
	}
}
