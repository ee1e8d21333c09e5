package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Seed loads the sample companies and invoices. Rows that already exist are
// left alone, so running it twice is harmless.
func Seed(ctx context.Context, logger *zerolog.Logger, pool *pgxpool.Pool) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		companies, err := tx.Exec(ctx, `
			INSERT INTO companies (code, name, description)
			VALUES
				('apple', 'Apple Computer', 'Maker of OSX.'),
				('ibm', 'IBM', 'Big blue.')
			ON CONFLICT (code) DO NOTHING`)
		if err != nil {
			return fmt.Errorf("seeding companies: %w", err)
		}

		// Invoices are only added alongside freshly inserted companies.
		if companies.RowsAffected() == 0 {
			logger.Info().Msg("sample data already present")
			return nil
		}

		invoices, err := tx.Exec(ctx, `
			INSERT INTO invoices (comp_code, amt, paid, paid_date)
			VALUES
				('apple', 100, FALSE, NULL),
				('apple', 200, TRUE, NOW()),
				('ibm', 300, FALSE, NULL)`)
		if err != nil {
			return fmt.Errorf("seeding invoices: %w", err)
		}

		logger.Info().
			Int64("companies", companies.RowsAffected()).
			Int64("invoices", invoices.RowsAffected()).
			Msg("seeded sample data")
		return nil
	})
}
