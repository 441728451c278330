package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "propertyctl",
	Short: "Manage the local property listing catalog",
	Long: `propertyctl lists, searches, creates, edits and deletes property listings
held in the configured storage slot. Configuration is read from PROPERTYDESK_*
environment variables and an optional .env file; flags override both.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storageFlags.driver, "driver", "", "storage driver: bolt, sqlite, postgres, redis or memory")
	rootCmd.PersistentFlags().StringVar(&storageFlags.path, "path", "", "database file for the bolt and sqlite drivers (default propertydesk.db for bolt, propertydesk.sqlite for sqlite)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "table", "output format: table, markdown, yaml or json")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
