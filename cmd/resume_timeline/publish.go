package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-timeline/internal/db"
	"github.com/jonathan/resume-timeline/internal/schemas"
	"github.com/spf13/cobra"
)

var (
	publishSlug           string
	publishSkipValidation bool
)

var publishCmd = &cobra.Command{
	Use:   "publish <file>",
	Short: "Store a resume document in PostgreSQL",
	Long:  "Validates a resume document and stores it as a new revision under a slug. The server reads the latest revision when source_kind is postgres.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPublish,
}

var revisionsCmd = &cobra.Command{
	Use:   "revisions",
	Short: "List stored revisions of a resume document",
	Args:  cobra.NoArgs,
	RunE:  runRevisions,
}

func init() {
	publishCmd.Flags().StringVar(&publishSlug, "slug", "", "Document slug (default from config, \"default\")")
	publishCmd.Flags().BoolVar(&publishSkipValidation, "skip-validation", false, "Store the document without schema validation")
	revisionsCmd.Flags().StringVar(&publishSlug, "slug", "", "Document slug (default from config, \"default\")")

	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(revisionsCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	if !publishSkipValidation {
		if err := schemas.ValidateDocument(data); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	database, err := connectDB(cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	slug := resolveSlug()
	id, err := database.SaveDocument(ctx, slug, data)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Published %s as %q (revision %s)\n", args[0], slug, id)
	return nil
}

func runRevisions(cmd *cobra.Command, _ []string) error {
	database, err := connectDB(cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	slug := resolveSlug()
	revisions, err := database.ListRevisions(cmd.Context(), slug)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(revisions) == 0 {
		_, _ = fmt.Fprintf(out, "No revisions stored under %q\n", slug)
		return nil
	}
	for _, rev := range revisions {
		_, _ = fmt.Fprintf(out, "%s  %s\n", rev.CreatedAt.Format("2006-01-02 15:04:05"), rev.ID)
	}
	return nil
}

func connectDB(cmd *cobra.Command) (*db.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set and database_url missing from config")
	}
	return db.Connect(cmd.Context(), cfg.DatabaseURL)
}

func resolveSlug() string {
	if publishSlug != "" {
		return publishSlug
	}
	return cfg.Slug
}
