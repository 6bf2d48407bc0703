package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-timeline/internal/observability"
	"github.com/jonathan/resume-timeline/internal/resume"
	"github.com/jonathan/resume-timeline/internal/schemas"
	"github.com/spf13/cobra"
)

var validateSchema string

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a resume document against the JSON schema",
	Long:  "Validates the resume document at the given path, or the configured source when no path is given, against the resume JSON schema and reports the defaults the loader would substitute.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Path to a JSON schema file (default: built-in resume schema)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var source resume.Source
	if len(args) == 1 {
		source = &resume.FileSource{Path: args[0]}
	} else {
		s, err := resume.NewSource(&cfg)
		if err != nil {
			return fmt.Errorf("failed to configure resume source: %w", err)
		}
		source = s
	}

	data, err := source.Load(cmd.Context())
	if err != nil {
		return err
	}

	if validateSchema != "" {
		err = schemas.ValidateDocumentWithSchema(validateSchema, data)
	} else {
		err = schemas.ValidateDocument(data)
	}

	out := cmd.OutOrStdout()
	printer := observability.NewPrinter(out)
	doc, warnings := resume.Parse(data)
	printer.PrintDocumentSummary(doc)
	printer.PrintWarnings(warnings)

	if err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprint(out, validationErr.Error())
			return fmt.Errorf("%s does not match the resume schema", source)
		}
		return err
	}

	_, _ = fmt.Fprintf(out, "✓ %s is valid\n", source)
	return nil
}
