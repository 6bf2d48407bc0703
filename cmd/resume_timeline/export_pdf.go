package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jonathan/resume-timeline/internal/rendering"
	"github.com/spf13/cobra"
)

var (
	exportPDFOutput  string
	exportPDFChrome  string
	exportPDFTimeout time.Duration
)

var exportPDFCmd = &cobra.Command{
	Use:   "export-pdf",
	Short: "Export the resume page as an A4 PDF",
	Long:  "Renders the HTML resume page and prints it to PDF with headless Chrome.",
	Args:  cobra.NoArgs,
	RunE:  runExportPDF,
}

func init() {
	exportPDFCmd.Flags().StringVarP(&exportPDFOutput, "out", "o", "", "Path to output PDF file (required)")
	exportPDFCmd.Flags().StringVar(&exportPDFChrome, "chrome-path", "", "Chrome binary (default from config or CHROME_PATH)")
	exportPDFCmd.Flags().DurationVar(&exportPDFTimeout, "timeout", 60*time.Second, "Maximum time for Chrome to print the page")

	if err := exportPDFCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(exportPDFCmd)
}

func runExportPDF(cmd *cobra.Command, _ []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	doc, err := store.Document(ctx)
	if err != nil {
		return err
	}
	view, err := store.View(ctx)
	if err != nil {
		return err
	}

	var page bytes.Buffer
	if err := rendering.RenderHTML(&page, doc, view); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}

	chromePath := exportPDFChrome
	if chromePath == "" {
		chromePath = cfg.ChromePath
	}
	pdf, err := rendering.RenderPDF(ctx, page.String(), rendering.PDFOptions{
		ChromePath: chromePath,
		Timeout:    exportPDFTimeout,
	})
	if err != nil {
		return err
	}

	if err := writeOutputFile(exportPDFOutput, pdf); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully exported PDF (%d bytes)\nOutput: %s\n", len(pdf), exportPDFOutput)
	return nil
}
