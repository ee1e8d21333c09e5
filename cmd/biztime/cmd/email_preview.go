package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/deppfellow/biztime/internal/lib/email"
	"github.com/spf13/cobra"
)

var previewDir string

var emailPreviewCmd = &cobra.Command{
	Use:   "email-preview",
	Short: "Render every email template with sample data",
	Long: `Render every email template with sample data into HTML files so
they can be opened in a browser.

Example:
  biztime email-preview --out tmp/emails`,
	RunE: runEmailPreview,
}

func init() {
	emailPreviewCmd.Flags().StringVar(&previewDir, "out", "email-previews", "directory to write rendered templates to")
}

func runEmailPreview(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(previewDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", previewDir, err)
	}

	for tmpl, data := range email.PreviewData {
		html, err := email.Render(tmpl, data)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", tmpl, err)
		}

		path := filepath.Join(previewDir, string(tmpl)+".html")
		if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
	}

	return nil
}
