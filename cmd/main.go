package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cadastrobot/config"
	"cadastrobot/pkg/api"
	"cadastrobot/pkg/bot"
	"cadastrobot/pkg/logger"
	"cadastrobot/service"
	"cadastrobot/storage"
	"cadastrobot/storage/memory"
	"cadastrobot/storage/postgres"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var stg storage.IStorage
	switch cfg.StorageDriver {
	case config.StorageMemory:
		log.Warning("using in-memory drafts; they are lost on restart")
		stg = memory.New()
	default:
		pgStore, err := postgres.New(ctx, cfg, log)
		if err != nil {
			log.Error("Failed to connect to postgres", logger.Error(err))
			os.Exit(1)
		}
		stg = pgStore
	}
	defer stg.Close()

	client, err := api.NewClient(cfg.ServerBaseURL, cfg.HTTPTimeout, log)
	if err != nil {
		log.Error("Invalid registration server URL", logger.String("url", cfg.ServerBaseURL), logger.Error(err))
		os.Exit(1)
	}

	svc := service.New(stg, client, log)

	b, err := bot.New(&cfg, svc, log)
	if err != nil {
		log.Error("Failed to initialize bot", logger.Error(err))
		os.Exit(1)
	}

	go func() {
		if err := bot.RunServer(ctx, cfg.AppPort, bot.NewRouter(stg, log), log); err != nil {
			log.Error("http server stopped", logger.Error(err))
			stop()
		}
	}()

	go b.Start()

	log.Info("🚀 Bot is now running.")
	<-ctx.Done()

	log.Info("Stopping bot and shutting down...")
	b.Stop()
}
