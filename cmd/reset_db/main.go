package main

import (
	"context"

	"cadastrobot/config"
	"cadastrobot/pkg/logger"
	"cadastrobot/storage/postgres"
)

// Drops every pending registration draft.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)
	pg, err := postgres.New(context.Background(), cfg, log)
	if err != nil {
		panic(err)
	}
	defer pg.Close()

	n, err := pg.Draft().DeleteAll(context.Background())
	if err != nil {
		log.Error("Failed to delete drafts", logger.Error(err))
		return
	}
	log.Info("Successfully deleted registration drafts.", logger.Int64("count", n))
}
