package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/clientdb/internal/common"
	"github.com/dmitrijs2005/clientdb/internal/registry/models"
	"github.com/spf13/cobra"
)

func newAddCommand(deps *commandDeps) *cobra.Command {
	var first, last, email, phone string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a client, optionally with a phone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var tel *string
			if phone != "" {
				tel = &phone
			}
			return deps.withBackend(cmd, func(ctx context.Context, b *Backend) error {
				id, err := b.Registry.AddClient(ctx, first, last, email, tel)
				if err != nil {
					return err
				}
				b.Printer.Line("Client %d added.", id)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&first, "first-name", "", "first name")
	cmd.Flags().StringVar(&last, "last-name", "", "last name")
	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&phone, "phone", "", "telephone")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newChangeCommand(deps *commandDeps) *cobra.Command {
	var first, last, email string

	cmd := &cobra.Command{
		Use:   "change ID",
		Short: "Change the given fields of a client, keep the others",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			changes := models.ClientChanges{
				FirstName: optionalString(cmd, "first-name", first),
				LastName:  optionalString(cmd, "last-name", last),
				Email:     optionalString(cmd, "email", email),
			}
			return deps.withBackend(cmd, func(ctx context.Context, b *Backend) error {
				if err := b.Registry.ChangeClient(ctx, id, changes); err != nil {
					return err
				}
				b.Printer.Line("Client %d changed.", id)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&first, "first-name", "", "new first name")
	cmd.Flags().StringVar(&last, "last-name", "", "new last name")
	cmd.Flags().StringVar(&email, "email", "", "new email")
	return cmd
}

func newDeleteCommand(deps *commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a client and all its phones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return deps.withBackend(cmd, func(ctx context.Context, b *Backend) error {
				deleted, err := b.Registry.DeleteClient(ctx, id)
				if errors.Is(err, common.ErrorNotFound) {
					b.Printer.DeleteMissed(id)
					return nil
				}
				if err != nil {
					return err
				}
				b.Printer.Deleted(deleted)
				return nil
			})
		},
	}
}

func newShowCommand(deps *commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a client and its phones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return deps.withBackend(cmd, func(ctx context.Context, b *Backend) error {
				c, err := b.Registry.GetClient(ctx, id)
				if err != nil {
					return fmt.Errorf("client %d: %w", id, err)
				}
				phones, err := b.Registry.ListPhones(ctx, id)
				if err != nil {
					return err
				}
				b.Printer.Client(c, phones)
				return nil
			})
		},
	}
}

func newFindCommand(deps *commandDeps) *cobra.Command {
	var first, last, email, phone string

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find clients matching any of the given fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := models.ClientFilter{
				FirstName: optionalString(cmd, "first-name", first),
				LastName:  optionalString(cmd, "last-name", last),
				Email:     optionalString(cmd, "email", email),
				Telephone: optionalString(cmd, "phone", phone),
			}
			return deps.withBackend(cmd, func(ctx context.Context, b *Backend) error {
				rows, err := b.Registry.FindClient(ctx, filter)
				if err != nil {
					return err
				}
				b.Printer.Rows(rows)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&first, "first-name", "", "first name")
	cmd.Flags().StringVar(&last, "last-name", "", "last name")
	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&phone, "phone", "", "telephone")
	return cmd
}
