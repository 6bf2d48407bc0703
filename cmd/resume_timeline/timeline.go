package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/resume-timeline/internal/observability"
	"github.com/spf13/cobra"
)

var timelineJSON bool

var timelineCmd = &cobra.Command{
	Use:   "timeline [employment|education]",
	Short: "Print the sorted timelines",
	Long:  "Loads the resume document and prints its employment and education timelines, newest first. A section argument limits the output to that timeline.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTimeline,
}

func init() {
	timelineCmd.Flags().BoolVar(&timelineJSON, "json", false, "Print JSON instead of text boxes")
	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	view, err := store.View(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printer := observability.NewPrinter(out)

	if len(args) == 0 {
		if timelineJSON {
			return writeJSON(out, view)
		}
		printer.PrintWarnings(store.Warnings())
		printer.PrintView(view)
		return nil
	}

	entries, err := view.Section(args[0])
	if err != nil {
		return err
	}
	if timelineJSON {
		return writeJSON(out, entries)
	}
	printer.PrintWarnings(store.Warnings())
	printer.PrintTimeline(args[0], entries)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
