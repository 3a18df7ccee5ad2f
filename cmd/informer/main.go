package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Nazarious-ucu/weather-informer/internal/app"
	"github.com/Nazarious-ucu/weather-informer/internal/config"
	"github.com/Nazarious-ucu/weather-informer/pkg/logger"
)

func main() {
	envFile := flag.String("env", ".env", "Path to the .env file holding API_KEY")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	l, err := logger.NewLogger(cfg.LogsPath, "weather-informer", cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = app.New(*cfg, l, os.Stdout).Run(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
