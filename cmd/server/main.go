package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"clothing-inventory/internal/config"
	"clothing-inventory/internal/inventory"
	"clothing-inventory/internal/store"
	"clothing-inventory/internal/tools"
	"clothing-inventory/internal/transport"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Error("initialize store", "path", cfg.DBPath, "err", err)
		os.Exit(1)
	}

	server := tools.NewServer(cfg.ServerName, cfg.ServerVersion, inventory.NewService(db), logger)
	handler := transport.NewHTTPHandler(server, logger)

	logger.Info("starting MCP server", "addr", cfg.Addr, "db", cfg.DBPath)
	log.Fatal(http.ListenAndServe(cfg.Addr, handler))
}
