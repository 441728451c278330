package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/propertydesk/propertydesk/internal/server"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the property dashboard API over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != "" {
			cfg.Server.Port = servePort
		}
		return server.Run(cmd.Context(), cfg, os.Stderr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (default from PROPERTYDESK_SERVER_PORT)")
}
