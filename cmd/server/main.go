package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/lucasnerism/drivenpass/internal/server"
	"github.com/lucasnerism/drivenpass/internal/server/config"
)

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
