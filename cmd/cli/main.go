package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/svilenkov/healthconnect/internal/cli"
	"github.com/svilenkov/healthconnect/internal/config"
	"github.com/svilenkov/healthconnect/internal/logging"
)

func main() {

	// optional .env overlay, ignored when the file is absent
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())
}
