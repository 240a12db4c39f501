package main

import (
	"context"
	"log"

	"github.com/mlaurent/userboard/internal/server"
	"github.com/mlaurent/userboard/internal/server/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
