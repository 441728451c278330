package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/propertydesk/propertydesk/internal/core/property"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a property",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, closeStore, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		ok, err := store.Delete(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", property.ErrNotFound, args[0])
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted property %s (%d remaining)\n", args[0], store.Count())
		return nil
	},
}
