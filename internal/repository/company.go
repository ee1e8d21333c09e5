package repository

import (
	"context"

	"github.com/deppfellow/biztime/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const companyColumns = `code, name, description`

type CompanyRepository struct {
	pool *pgxpool.Pool
}

func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

// List returns every company's code and name, ordered by code.
func (r *CompanyRepository) List(ctx context.Context) ([]model.CompanySummary, error) {
	rows, err := r.pool.Query(ctx, `SELECT code, name FROM companies ORDER BY code`)
	if err != nil {
		return nil, errors.Wrap(err, "list companies")
	}

	companies, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.CompanySummary])
	if err != nil {
		return nil, errors.Wrap(err, "scan companies")
	}

	return companies, nil
}

func (r *CompanyRepository) GetByCode(ctx context.Context, code string) (*model.Company, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+companyColumns+` FROM companies WHERE code = $1`, code)
	if err != nil {
		return nil, errors.Wrapf(err, "table:companies: get %s", code)
	}

	company, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Company])
	if err != nil {
		return nil, errors.Wrapf(err, "table:companies: get %s", code)
	}

	return &company, nil
}

// InvoiceIDs returns the ids of the company's invoices in ascending order.
// A company without invoices yields an empty, non-nil slice.
func (r *CompanyRepository) InvoiceIDs(ctx context.Context, code string) ([]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM invoices WHERE comp_code = $1 ORDER BY id`, code)
	if err != nil {
		return nil, errors.Wrapf(err, "list invoice ids of %s", code)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, errors.Wrapf(err, "scan invoice ids of %s", code)
	}
	if ids == nil {
		ids = []int{}
	}

	return ids, nil
}

// Create inserts a company. A taken code surfaces as a unique violation.
func (r *CompanyRepository) Create(ctx context.Context, company model.Company) (*model.Company, error) {
	rows, err := r.pool.Query(ctx, `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING `+companyColumns,
		company.Code, company.Name, company.Description,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "insert company %s", company.Code)
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Company])
	if err != nil {
		return nil, errors.Wrapf(err, "insert company %s", company.Code)
	}

	return &created, nil
}

// Update replaces the company's name, and its description when description
// is non-nil.
func (r *CompanyRepository) Update(ctx context.Context, code, name string, description *string) (*model.Company, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE companies
		SET name = $2, description = COALESCE($3, description)
		WHERE code = $1
		RETURNING `+companyColumns,
		code, name, description,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "table:companies: update %s", code)
	}

	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Company])
	if err != nil {
		return nil, errors.Wrapf(err, "table:companies: update %s", code)
	}

	return &updated, nil
}

// Delete removes the company and, through ON DELETE CASCADE, its invoices.
// It reports whether a row was deleted.
func (r *CompanyRepository) Delete(ctx context.Context, code string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE code = $1`, code)
	if err != nil {
		return false, errors.Wrapf(err, "delete company %s", code)
	}
	return tag.RowsAffected() > 0, nil
}
