package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/propertydesk/propertydesk/internal/core/property"
)

var listFlags struct {
	search string
	typ    string
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List properties, optionally filtered by search text and type",
	Long: `List prints every property in insertion order. --search keeps records whose
name or location contains the text (case-insensitive); --type keeps records of
one type (Apartment, House, Condo, Townhouse, Commercial or All).`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFlags.search, "search", "s", "", "match name or location")
	listCmd.Flags().StringVarP(&listFlags.typ, "type", "t", string(property.TypeAll), "property type")
}

func runList(cmd *cobra.Command, _ []string) error {
	typeFilter, err := property.ParseTypeFilter(listFlags.typ)
	if err != nil {
		return err
	}

	store, _, closeStore, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStore()

	store.SetFilters(property.FilterPatch{Search: &listFlags.search, Type: &typeFilter})
	visible := store.FilteredView()

	if len(visible) == 0 && outputFlag == "table" {
		fmt.Fprintln(cmd.OutOrStdout(), "No properties found. Try adjusting your search criteria or add a new property.")
		return nil
	}
	return writeList(cmd.OutOrStdout(), visible)
}
