package domain

import "context"

// ServicePort is the contracts surface exposed to transport and sibling modules
type ServicePort interface {
	// ListContracts returns every known rental contract
	ListContracts(ctx context.Context) ([]Contract, error)

	// AddPayment validates and stores a new payment under contractID
	AddPayment(ctx context.Context, contractID string, in NewPaymentInput) (Payment, error)

	// DeletePayment soft-deletes a payment; the record stays in the store
	DeletePayment(ctx context.Context, contractID, paymentID string) (Confirmation, error)

	// ModifyPayment applies a partial update to a live payment
	ModifyPayment(ctx context.Context, contractID, paymentID string, in PaymentPatchInput) (Confirmation, error)

	// PaymentList aggregates live payments for a contract inside an optional window
	PaymentList(ctx context.Context, contractID string, w Window) (PaymentAggregate, error)
}

// SeederPort is used at boot to guarantee a non-empty contract collection
type SeederPort interface {
	EnsureSeed(ctx context.Context) error
}
