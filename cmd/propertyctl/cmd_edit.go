package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/propertydesk/propertydesk/internal/core/form"
	"github.com/propertydesk/propertydesk/internal/core/validation"
)

var editForm validation.FormData

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a property",
	Long: `Edit replaces the fields given as flags and keeps the others. The change is
applied after the configured edit delay; interrupting the command before then
discards it.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	bindFormFlags(editCmd, &editForm, "")
}

func runEdit(cmd *cobra.Command, args []string) error {
	store, cfg, closeStore, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStore()

	existing, err := store.Get(args[0])
	if err != nil {
		return err
	}

	f := validation.FormDataFrom(existing)
	flags := cmd.Flags()
	if flags.Changed("name") {
		f.Name = editForm.Name
	}
	if flags.Changed("type") {
		f.Type = editForm.Type
	}
	if flags.Changed("price") {
		f.Price = editForm.Price
	}
	if flags.Changed("location") {
		f.Location = editForm.Location
	}
	if flags.Changed("description") {
		f.Description = editForm.Description
	}

	forms := form.NewService(store, validation.NewValidator(), cfg.Form.EditDelay)
	session := forms.Edit(existing)
	defer session.Close()

	fmt.Fprintln(cmd.ErrOrStderr(), "Updating...")
	p, err := session.Submit(cmd.Context(), f)
	if err != nil {
		return err
	}
	return writeOne(cmd.OutOrStdout(), p)
}
