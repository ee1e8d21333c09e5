package cmd

import (
	"fmt"

	"github.com/deppfellow/biztime/internal/database"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample companies and invoices",
	Long: `Load the sample companies (apple, ibm) and their invoices.

Rows that already exist are left alone, so seeding twice is harmless.
Run "biztime migrate" first on a fresh database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, loggerService, err := loadConfig()
		if err != nil {
			return err
		}
		defer loggerService.Shutdown()

		db, err := database.New(cfg, &log, loggerService)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		return database.Seed(cmd.Context(), &log, db.Pool)
	},
}
