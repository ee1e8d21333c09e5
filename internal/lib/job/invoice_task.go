package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/deppfellow/biztime/internal/model"
	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// TaskInvoicePaid is the job type name stored in Redis.
const TaskInvoicePaid = "invoice:paid"

// InvoicePaidPayload is the JSON payload of an invoice:paid task.
type InvoicePaidPayload struct {
	InvoiceID int             `json:"invoice_id"`
	CompCode  string          `json:"comp_code"`
	Amt       decimal.Decimal `json:"amt"`
	PaidDate  time.Time       `json:"paid_date"`
}

// NewInvoicePaidTask builds the task announcing that inv was just paid.
// It retries up to 3 times, runs on the default queue and is killed after
// 30 seconds.
func NewInvoicePaidTask(inv model.Invoice) (*asynq.Task, error) {
	if inv.PaidDate == nil {
		return nil, errors.Errorf("invoice %d has no paid date", inv.ID)
	}

	payload, err := json.Marshal(InvoicePaidPayload{
		InvoiceID: inv.ID,
		CompCode:  inv.CompCode,
		Amt:       inv.Amt,
		PaidDate:  *inv.PaidDate,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskInvoicePaid,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// EnqueueInvoicePaid queues the paid notification for inv.
func (j *JobService) EnqueueInvoicePaid(ctx context.Context, inv model.Invoice) error {
	task, err := NewInvoicePaidTask(inv)
	if err != nil {
		return err
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return errors.Wrapf(err, "enqueue %s for invoice %d", TaskInvoicePaid, inv.ID)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Int("invoice_id", inv.ID).
		Msg("enqueued invoice paid task")

	return nil
}
