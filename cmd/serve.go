package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"finplan/internal/server"
)

var flagServeAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the projection HTTP API",
	Long:  "Serve POST /v1/projections: accepts a scenario document, returns snapshots and summary.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", ":8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "finplan",
	})
	if flagQuiet {
		logger.SetLevel(log.WarnLevel)
	}

	return server.New(logger).ListenAndServe(flagServeAddr)
}
