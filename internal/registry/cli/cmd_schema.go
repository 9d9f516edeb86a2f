package cli

import (
	"context"

	"github.com/dmitrijs2005/clientdb/internal/registry/seed"
	"github.com/spf13/cobra"
)

func newInitCommand(deps *commandDeps) *cobra.Command {
	var keep bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Drop and recreate the client and phone tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return deps.withBackend(cmd, func(ctx context.Context, b *Backend) error {
				if keep {
					if err := b.Schema.Create(ctx); err != nil {
						return err
					}
					b.Printer.Line("Schema ensured.")
					return nil
				}
				if err := b.Schema.Initialize(ctx); err != nil {
					return err
				}
				b.Printer.Line("Schema recreated.")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&keep, "keep", false, "only create missing tables, keep data")
	return cmd
}

func newDemoCommand(deps *commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the demonstration sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return deps.withBackend(cmd, func(ctx context.Context, b *Backend) error {
				return seed.NewRunner(b.Registry, b.Schema, b.Printer, b.Logger).Run(ctx, !deps.cfg.SkipReset)
			})
		},
	}
}

func newSeedCommand(deps *commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return deps.withBackend(cmd, func(ctx context.Context, b *Backend) error {
				ids, err := seed.NewRunner(b.Registry, b.Schema, b.Printer, b.Logger).Populate(ctx)
				if err != nil {
					return err
				}
				b.Printer.Line("%d clients added.", len(ids))
				return nil
			})
		},
	}
}
