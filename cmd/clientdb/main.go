package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/clientdb/internal/registry"
	"github.com/dmitrijs2005/clientdb/internal/registry/config"
)

func main() {
	if err := run(); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := registry.NewApp(ctx, cfg, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run(ctx)
}
