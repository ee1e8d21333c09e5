package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/deppfellow/biztime/internal/config"
	"github.com/deppfellow/biztime/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type invoiceMailer interface {
	SendInvoicePaidEmail(to string, invoiceID int, compCode string, amt decimal.Decimal, paidDate time.Time) error
}

// InitHandlers wires the dependencies the task handlers use.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.mailer = email.NewClient(cfg, logger)
	j.billingEmail = cfg.Integration.BillingEmail

	if j.billingEmail == "" {
		logger.Warn().Msg("integration.billing_email not set, invoice paid emails are disabled")
	}
}

func (j *JobService) handleInvoicePaidTask(ctx context.Context, t *asynq.Task) error {
	var p InvoicePaidPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// A malformed payload never succeeds, so don't retry it.
		return fmt.Errorf("failed to unmarshal invoice paid payload: %v: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", TaskInvoicePaid).
		Int("invoice_id", p.InvoiceID).
		Str("comp_code", p.CompCode).
		Logger()

	if j.billingEmail == "" {
		log.Info().Msg("No billing email configured, skipping invoice paid email")
		return nil
	}

	log.Info().Msg("Processing invoice paid task")

	if err := j.mailer.SendInvoicePaidEmail(j.billingEmail, p.InvoiceID, p.CompCode, p.Amt, p.PaidDate); err != nil {
		log.Error().Err(err).Msg("Failed to send invoice paid email")
		return err
	}

	log.Info().Msg("Successfully sent invoice paid email")

	return nil
}
