package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const sampleResume = `{
	"basics": {"name": "Jane Doe", "headline": "Platform Engineer", "location": "Berlin"},
	"profile": "Builds reliable systems.",
	"skills": ["Go", {"name": "Kubernetes", "level": 4}],
	"languages": [{"name": "English", "level": 5}],
	"employment": [
		{"title": "Intern", "company": "Startup", "start": "2017-06", "end": "2017-09"},
		{"title": "Staff Engineer", "company": "Acme", "start": "2020-03",
		 "highlights": ["Shipped things", {"mainHighlight": "Led migration", "subHighlights": ["Zero downtime"]}]},
		{"title": "Engineer", "company": "Initech", "start": "2018-01", "end": "2020-02"}
	],
	"education": [{"degree": "BSc", "institution": "Uni", "start": "2014-09", "end": "2018-06"}],
	"courses": [{"name": "CKA", "provider": "CNCF", "date": "2022-03"}]
}`

// writeResume writes content to a temporary resume file and returns its path.
func writeResume(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Setenv("RESUME_SOURCE", "")
	t.Setenv("RESUME_SOURCE_KIND", "")
	t.Setenv("RESUME_TEMPLATE", "")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
