package repository

import (
	"context"

	"github.com/deppfellow/biztime/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

type InvoiceRepository struct {
	pool *pgxpool.Pool
}

func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

// List returns every invoice's id and company code, ordered by id.
func (r *InvoiceRepository) List(ctx context.Context) ([]model.InvoiceSummary, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, comp_code FROM invoices ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "list invoices")
	}

	invoices, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.InvoiceSummary])
	if err != nil {
		return nil, errors.Wrap(err, "scan invoices")
	}

	return invoices, nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id int) (*model.Invoice, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
	if err != nil {
		return nil, errors.Wrapf(err, "table:invoices: get %d", id)
	}

	invoice, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Invoice])
	if err != nil {
		return nil, errors.Wrapf(err, "table:invoices: get %d", id)
	}

	return &invoice, nil
}

// ListByCompany returns the company's full invoices ordered by id, empty
// when it has none.
func (r *InvoiceRepository) ListByCompany(ctx context.Context, code string) ([]model.Invoice, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE comp_code = $1 ORDER BY id`, code)
	if err != nil {
		return nil, errors.Wrapf(err, "list invoices of %s", code)
	}

	invoices, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Invoice])
	if err != nil {
		return nil, errors.Wrapf(err, "scan invoices of %s", code)
	}
	if invoices == nil {
		invoices = []model.Invoice{}
	}

	return invoices, nil
}

// Create inserts an unpaid invoice dated today. An unknown company code
// surfaces as a foreign key violation.
func (r *InvoiceRepository) Create(ctx context.Context, compCode string, amt decimal.Decimal) (*model.Invoice, error) {
	rows, err := r.pool.Query(ctx, `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING `+invoiceColumns,
		compCode, amt,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "insert invoice for %s", compCode)
	}

	invoice, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Invoice])
	if err != nil {
		return nil, errors.Wrapf(err, "insert invoice for %s", compCode)
	}

	return &invoice, nil
}

// UpdatePayment locks the invoice row, lets apply compute its next state
// from the locked row and writes that state back, all in one transaction.
// Concurrent updates of the same invoice therefore see each other's paid_date.
func (r *InvoiceRepository) UpdatePayment(
	ctx context.Context,
	id int,
	apply func(current model.Invoice) model.PaymentUpdate,
) (*model.Invoice, model.PaymentUpdate, error) {
	var (
		updated model.Invoice
		change  model.PaymentUpdate
	)

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1 FOR UPDATE`, id)
		if err != nil {
			return err
		}

		current, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Invoice])
		if err != nil {
			return err
		}

		change = apply(current)

		rows, err = tx.Query(ctx, `
			UPDATE invoices
			SET amt = $2, paid = $3, paid_date = $4
			WHERE id = $1
			RETURNING `+invoiceColumns,
			id, change.Amt, change.Paid, change.PaidDate,
		)
		if err != nil {
			return err
		}

		updated, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Invoice])
		return err
	})
	if err != nil {
		return nil, model.PaymentUpdate{}, errors.Wrapf(err, "table:invoices: update %d", id)
	}

	return &updated, change, nil
}

// Delete removes the invoice and reports whether a row was deleted.
func (r *InvoiceRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return false, errors.Wrapf(err, "delete invoice %d", id)
	}
	return tag.RowsAffected() > 0, nil
}
