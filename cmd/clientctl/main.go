package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/clientdb/internal/registry"
	"github.com/dmitrijs2005/clientdb/internal/registry/cli"
	"github.com/dmitrijs2005/clientdb/internal/registry/config"
)

func open(ctx context.Context, cfg *config.Config, out io.Writer) (*cli.Backend, error) {
	app, err := registry.NewApp(ctx, cfg, out, os.Stderr)
	if err != nil {
		return nil, err
	}
	return &cli.Backend{
		Registry: app.Registry(),
		Schema:   app.Schema(),
		Printer:  app.Printer(),
		Logger:   app.Logger(),
		Close:    app.Close,
	}, nil
}

func main() {
	if err := cli.NewRootCommand(os.Stdout, open).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
