// Package domain holds the wire-facing types for rental contracts and their payments
package domain

import "time"

// Contract is a rental contract as served to clients
type Contract struct {
	ID      string `json:"id"`
	Details string `json:"details"`
	Address string `json:"address"`
}

// Payment is a single payment record attached to a contract
// soft-deleted records never leave the repo layer
type Payment struct {
	ID          string    `json:"id"`
	ContractID  string    `json:"contractId"`
	Description string    `json:"description"`
	Value       float64   `json:"value"`
	Time        time.Time `json:"time"`
	IsImported  bool      `json:"isImported"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	IsDeleted   bool      `json:"isDeleted"`
}

// NewPaymentInput is the body accepted when registering a payment
// Value is a pointer so a literal zero survives required validation upstream
type NewPaymentInput struct {
	Description string   `json:"description" validate:"required"`
	Value       *float64 `json:"value" validate:"required"`
	Time        string   `json:"time" validate:"required"`
	IsImported  *bool    `json:"isImported"`
}

// PaymentPatchInput is the body accepted when updating a payment
// every field is optional but at least one must be present
type PaymentPatchInput struct {
	Description *string  `json:"description"`
	Value       *float64 `json:"value"`
	Time        *string  `json:"time"`
}

// Window bounds a payment listing, both ends inclusive and optional
type Window struct {
	Start *time.Time
	End   *time.Time
}

// PaymentAggregate is the payment listing payload: total value plus the
// matching records ordered newest insertion first
type PaymentAggregate struct {
	Sum   float64   `json:"sum"`
	Items []Payment `json:"items"`
}

// Confirmation wraps human-readable success messages for mutations
type Confirmation struct {
	Message string `json:"message"`
}
