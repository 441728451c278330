package main

import (
	"github.com/spf13/cobra"

	"github.com/propertydesk/propertydesk/internal/core/form"
	"github.com/propertydesk/propertydesk/internal/core/property"
	"github.com/propertydesk/propertydesk/internal/core/validation"
)

var addForm validation.FormData

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a property",
	Example: `  propertyctl add --name "Harbor Loft" --type Condo --price 540000 \
    --location "Seattle, WA" --description "Corner unit with water views."`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	bindFormFlags(addCmd, &addForm, string(property.TypeApartment))
}

// bindFormFlags registers one flag per form field.
func bindFormFlags(cmd *cobra.Command, f *validation.FormData, defaultType string) {
	cmd.Flags().StringVar(&f.Name, "name", "", "property name (required, at most 100 characters)")
	cmd.Flags().StringVar(&f.Type, "type", defaultType, "Apartment, House, Condo, Townhouse or Commercial")
	cmd.Flags().StringVar(&f.Price, "price", "", "price in US dollars (required, greater than 0)")
	cmd.Flags().StringVar(&f.Location, "location", "", "location (required)")
	cmd.Flags().StringVar(&f.Description, "description", "", "description (at most 500 characters)")
}

func runAdd(cmd *cobra.Command, _ []string) error {
	store, cfg, closeStore, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStore()

	forms := form.NewService(store, validation.NewValidator(), cfg.Form.EditDelay)
	p, err := forms.Create(cmd.Context(), addForm)
	if err != nil {
		return err
	}
	return writeOne(cmd.OutOrStdout(), p)
}
