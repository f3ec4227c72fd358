// Package payment abstracts the external gateway. Checkout hands it an
// amount and gets back exactly one outcome: paid, failed or cancelled. The
// order lifecycle maps those to commit-as-Paid, abort-with-message and
// abort-silently; no order is ever left half-created.
package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPaid      Status = "paid"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

type Request struct {
	Amount   float64
	Currency string
	OrderRef string
	KeyID    string // merchant key from payment settings
}

type Result struct {
	Status        Status
	TransactionID string // set when Status is paid
	Reason        string // set when Status is failed
}

// Gateway is implemented by the real processor integration. Collect returns
// an error only for misconfiguration or transport trouble; a declined or
// abandoned payment is a normal Result.
type Gateway interface {
	Collect(ctx context.Context, req Request) (Result, error)
}

// Sandbox approves every payment with a generated transaction id. It still
// enforces the merchant-key check so a misconfigured shop fails the same way
// the live gateway would.
type Sandbox struct{}

func (Sandbox) Collect(_ context.Context, req Request) (Result, error) {
	if req.KeyID == "" {
		return Result{}, fmt.Errorf("payment gateway is not configured: missing merchant key")
	}
	if req.Amount <= 0 {
		return Result{Status: StatusFailed, Reason: "amount must be positive"}, nil
	}
	return Result{
		Status:        StatusPaid,
		TransactionID: "pay_" + uuid.NewString()[:14],
	}, nil
}
