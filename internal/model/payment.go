package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Clock returns the current time. Services take one so payment dates can
// be pinned in tests.
type Clock func() time.Time

// NextPaidDate computes the paid_date to store for an invoice whose
// current paid_date is current, when the caller asks for paid.
//
//  1. not yet paid, paid requested: now
//  2. unpaid requested: nil, whatever the prior state
//  3. already paid, paid requested: current, unchanged
//
// The returned pointer never aliases current.
func NextPaidDate(current *time.Time, paid bool, now time.Time) *time.Time {
	switch {
	case current == nil && paid:
		return &now
	case !paid:
		return nil
	default:
		kept := *current
		return &kept
	}
}

// PaymentUpdate is the state an invoice update persists.
type PaymentUpdate struct {
	Amt      decimal.Decimal
	Paid     bool
	PaidDate *time.Time

	// BecamePaid is set when the update moves the invoice from unpaid to paid.
	BecamePaid bool
}

// ApplyPayment computes the next stored state of current for a requested
// amount and paid flag.
func ApplyPayment(current Invoice, amt decimal.Decimal, paid bool, now time.Time) PaymentUpdate {
	paidDate := NextPaidDate(current.PaidDate, paid, now)

	return PaymentUpdate{
		Amt:        amt,
		Paid:       paid,
		PaidDate:   paidDate,
		BecamePaid: current.PaidDate == nil && paidDate != nil,
	}
}
