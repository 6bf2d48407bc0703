package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-timeline/internal/rendering"
	"github.com/spf13/cobra"
)

var (
	renderFormat   string
	renderTemplate string
	renderOutput   string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the resume as LaTeX or HTML",
	Long:  "Renders the resume document with the LaTeX template or as the standalone HTML page. Output goes to stdout unless --out is given.",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", rendering.FormatLaTeX, "Output format: latex or html")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Path to a LaTeX template (default from config, then built-in)")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Path to output file")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
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

	var buf bytes.Buffer
	switch renderFormat {
	case rendering.FormatLaTeX, "tex":
		templatePath := renderTemplate
		if templatePath == "" {
			templatePath = cfg.Template
		}
		latex, err := rendering.RenderLaTeX(doc, view, templatePath)
		if err != nil {
			return fmt.Errorf("failed to render LaTeX: %w", err)
		}
		buf.WriteString(latex)
	case rendering.FormatHTML:
		if err := rendering.RenderHTML(&buf, doc, view); err != nil {
			return fmt.Errorf("failed to render HTML: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q (want latex or html)", renderFormat)
	}

	if renderOutput == "" {
		_, err := io.Copy(cmd.OutOrStdout(), &buf)
		return err
	}
	if err := writeOutputFile(renderOutput, buf.Bytes()); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", renderOutput)
	return nil
}

func writeOutputFile(path string, data []byte) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
