package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newAddPhoneCommand(deps *commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "add-phone ID TELEPHONE",
		Short: "Add a phone to an existing client",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return deps.withBackend(cmd, func(ctx context.Context, b *Backend) error {
				phoneID, err := b.Registry.AddPhone(ctx, id, args[1])
				if err != nil {
					return err
				}
				b.Printer.Line("Phone %d added to client %d.", phoneID, id)
				return nil
			})
		},
	}
}

func newDeletePhoneCommand(deps *commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-phone TELEPHONE",
		Short: "Delete every phone with this number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return deps.withBackend(cmd, func(ctx context.Context, b *Backend) error {
				n, err := b.Registry.DeletePhone(ctx, args[0])
				if err != nil {
					return err
				}
				b.Printer.Line("%d phone(s) deleted.", n)
				return nil
			})
		},
	}
}
