package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/cli"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/config"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/logging"
)

func main() {
	// Load .env if present; env vars may also be set directly.
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
