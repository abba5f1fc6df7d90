// Package repo implements contract and payment persistence on the store seam
package repo

import (
	"context"
	"time"

	"rentals/internal/services/contracts/domain"
)

// collection names in the document store
const (
	contractsCollection = "contracts"
	paymentsCollection  = "payments"
)

// ContractsRepo reads and seeds rental contracts
type ContractsRepo interface {
	// All lists every contract
	All(ctx context.Context) ([]domain.Contract, error)

	// ByID fetches one contract or a NotFound error
	ByID(ctx context.Context, id string) (domain.Contract, error)

	// Count reports how many contracts exist, used by the boot seeder
	Count(ctx context.Context) (int64, error)

	// SeedMany bulk-inserts contracts, used only when the collection is empty
	SeedMany(ctx context.Context, contracts []domain.Contract) error
}

// PaymentSet carries the optional fields of a partial payment update
// nil fields are left untouched in the store
type PaymentSet struct {
	Description *string
	Value       *float64
	Time        *time.Time
}

// PaymentsRepo mutates and aggregates payment records
type PaymentsRepo interface {
	// Insert stores p and returns it with the generated id filled in
	Insert(ctx context.Context, p domain.Payment) (domain.Payment, error)

	// SoftDelete marks a live payment deleted and reports how many records changed
	SoftDelete(ctx context.Context, paymentID string, now time.Time) (int64, error)

	// Update applies set to a live payment and reports how many records changed
	Update(ctx context.Context, paymentID string, set PaymentSet, now time.Time) (int64, error)

	// Aggregate sums and lists live payments for a contract inside w
	Aggregate(ctx context.Context, contractID string, w domain.Window) (domain.PaymentAggregate, error)
}
