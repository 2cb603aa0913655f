package main

import (
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"clothing-inventory/internal/config"
	"clothing-inventory/internal/inventory"
	"clothing-inventory/internal/store"
	"clothing-inventory/internal/tools"
	"clothing-inventory/internal/transport"
)

func main() {
	// Lambda's filesystem is read-only outside /tmp.
	if os.Getenv("DB_PATH") == "" {
		os.Setenv("DB_PATH", "/tmp/inventory.db")
	}

	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Error("initialize store", "path", cfg.DBPath, "err", err)
		os.Exit(1)
	}

	server := tools.NewServer(cfg.ServerName, cfg.ServerVersion, inventory.NewService(db), logger)
	handler := transport.NewHTTPHandler(server, logger)

	adapter := transport.NewLambdaAdapter(handler)
	lambda.Start(adapter.Handle)
}
