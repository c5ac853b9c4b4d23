package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/trollfaceman/Telgrambot/internal/bot"
	"github.com/trollfaceman/Telgrambot/internal/config"
	"github.com/trollfaceman/Telgrambot/internal/database"
	"github.com/trollfaceman/Telgrambot/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "[reportbot] ", log.LstdFlags|log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("database init failed: %v", err)
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Fatalf("telegram init failed: %v", err)
	}
	logger.Printf("authorized on account %s", api.Self.UserName)

	reportBot := bot.New(cfg, api, store.New(db), logger)
	if err := reportBot.StartScheduler(); err != nil {
		logger.Fatalf("scheduler start: %v", err)
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := api.GetUpdatesChan(updateConfig)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
		logger.Println("shutting down...")
		api.StopReceivingUpdates()
	}()

	for update := range updates {
		reportBot.HandleUpdate(update)
	}

	reportBot.StopScheduler()
	logger.Println("stopped")
}
