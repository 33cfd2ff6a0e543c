package main

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hitman/internal/config"
	"hitman/internal/logger"
	"hitman/internal/storage"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	var store storage.Store
	var err error
	if cfg.RedisURL != "" {
		var rs *storage.RedisStore
		rs, err = storage.NewRedisStore(cfg.RedisURL, log)
		if err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			err = rs.WaitForConnection(ctx)
			cancel()
		}
		store = rs
	} else {
		store, err = storage.NewFileStore(cfg.SaveDir, log)
	}
	if err != nil {
		log.Error("Failed to open save store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	log.Info("Starting game console", "rooms", cfg.RoomCount)

	p := tea.NewProgram(
		NewGameUI(cfg, store, log),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		log.Error("Console UI failed", "error", err)
		os.Exit(1)
	}
}
