// Package cli exposes every registry operation as a cobra subcommand.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/clientdb/internal/logging"
	"github.com/dmitrijs2005/clientdb/internal/registry/config"
	"github.com/dmitrijs2005/clientdb/internal/registry/printer"
	"github.com/dmitrijs2005/clientdb/internal/registry/seed"
	"github.com/dmitrijs2005/clientdb/internal/registry/services"
	"github.com/spf13/cobra"
)

// Backend is what a command needs from an open registry.
type Backend struct {
	Registry services.Registry
	Schema   seed.SchemaInitializer
	Printer  *printer.Printer
	Logger   logging.Logger
	Close    func() error
}

// Opener connects to the registry described by cfg. Results go to out.
type Opener func(ctx context.Context, cfg *config.Config, out io.Writer) (*Backend, error)

type commandDeps struct {
	out  io.Writer
	open Opener
	cfg  *config.Config
}

// withBackend opens the registry, runs fn and always closes it.
func (d *commandDeps) withBackend(cmd *cobra.Command, fn func(ctx context.Context, b *Backend) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	b, err := d.open(ctx, d.cfg, d.out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := b.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(ctx, b)
}

func NewRootCommand(out io.Writer, open Opener) *cobra.Command {
	deps := &commandDeps{out: out, open: open}

	var (
		configPath string
		dsn        string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:           "clientctl",
		Short:         "Manage the client registry",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var cfgArgs []string
			if configPath != "" {
				cfgArgs = append(cfgArgs, "-c", configPath)
			}
			if cmd.Flags().Changed("dsn") {
				cfgArgs = append(cfgArgs, "-d="+dsn)
			}
			if cmd.Flags().Changed("log-level") {
				cfgArgs = append(cfgArgs, "-l="+logLevel)
			}
			deps.cfg = config.Load(cfgArgs)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	pf := cmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "config file (JSON or YAML)")
	pf.StringVarP(&dsn, "dsn", "d", "", "PostgreSQL DSN")
	pf.StringVarP(&logLevel, "log-level", "l", "", "log level")

	cmd.AddCommand(
		newInitCommand(deps),
		newDemoCommand(deps),
		newSeedCommand(deps),
		newAddCommand(deps),
		newChangeCommand(deps),
		newDeleteCommand(deps),
		newShowCommand(deps),
		newAddPhoneCommand(deps),
		newDeletePhoneCommand(deps),
		newFindCommand(deps),
	)
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid client id %q", s)
	}
	return id, nil
}

// optionalString returns a pointer to the flag value when the flag was
// given, so an explicit empty value still counts as set.
func optionalString(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
