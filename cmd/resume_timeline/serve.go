package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-timeline/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start an HTTP server that renders the resume page and exposes the document and its timelines as JSON.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default from config, 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	port := cfg.Port
	if servePort != 0 {
		port = servePort
	}

	store, err := newStore()
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{Port: port}, store)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Start the load now; requests join it while it is in flight.
	go func() { _, _ = store.Document(context.Background()) }()

	return srv.Start()
}
