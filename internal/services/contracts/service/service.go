// Package service provides the contracts service implementation
package service

import (
	"context"
	"time"

	"rentals/internal/modkit/repokit"
	perr "rentals/internal/platform/errors"
	"rentals/internal/platform/logger"
	"rentals/internal/services/contracts/domain"
	"rentals/internal/services/contracts/repo"
)

// Svc implements domain.ServicePort and domain.SeederPort
type Svc struct {
	contracts repo.ContractsRepo
	payments  repo.PaymentsRepo
	now       func() time.Time
}

// New constructs the contracts service, binding both repos to db
func New(
	db repokit.Database,
	cb repokit.Binder[repo.ContractsRepo],
	pb repokit.Binder[repo.PaymentsRepo],
) *Svc {
	if cb == nil || pb == nil {
		panic("contracts.Service requires non-nil repo binders")
	}
	return &Svc{
		contracts: repokit.MustBind(cb, db),
		payments:  repokit.MustBind(pb, db),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ListContracts implements domain.ServicePort
func (s *Svc) ListContracts(ctx context.Context) ([]domain.Contract, error) {
	out, err := s.contracts.All(ctx)
	if err != nil {
		s.logStore(ctx, err, "list contracts failed")
		return nil, err
	}
	return out, nil
}

// AddPayment implements domain.ServicePort
func (s *Svc) AddPayment(ctx context.Context, contractID string, in domain.NewPaymentInput) (domain.Payment, error) {
	at, err := domain.ParseISOTime(in.Time)
	if err != nil {
		return domain.Payment{}, perr.Validationf("'time' must be a valid ISO 8601 date string")
	}
	// the contract must exist before any payment work happens
	if _, err := s.contracts.ByID(ctx, contractID); err != nil {
		s.logStore(ctx, err, "contract lookup failed")
		return domain.Payment{}, err
	}

	now := s.now()
	p := domain.Payment{
		ContractID:  contractID,
		Description: in.Description,
		Value:       *in.Value,
		Time:        at,
		IsImported:  in.IsImported != nil && *in.IsImported,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := s.payments.Insert(ctx, p)
	if err != nil {
		s.logStore(ctx, err, "payment insert failed")
		return domain.Payment{}, err
	}
	return created, nil
}

// DeletePayment implements domain.ServicePort
func (s *Svc) DeletePayment(ctx context.Context, contractID, paymentID string) (domain.Confirmation, error) {
	if _, err := s.contracts.ByID(ctx, contractID); err != nil {
		s.logStore(ctx, err, "contract lookup failed")
		return domain.Confirmation{}, err
	}
	modified, err := s.payments.SoftDelete(ctx, paymentID, s.now())
	if err != nil {
		s.logStore(ctx, err, "payment delete failed")
		return domain.Confirmation{}, err
	}
	if modified == 0 {
		return domain.Confirmation{}, paymentNotFound(paymentID)
	}
	return domain.Confirmation{Message: "Deleted paymentId = '" + paymentID + "'"}, nil
}

// ModifyPayment implements domain.ServicePort
func (s *Svc) ModifyPayment(
	ctx context.Context,
	contractID, paymentID string,
	in domain.PaymentPatchInput,
) (domain.Confirmation, error) {
	if in.Description == nil && in.Value == nil && in.Time == nil {
		return domain.Confirmation{},
			perr.Validationf("at least one of 'description', 'value' or 'time' is required in request body")
	}
	set := repo.PaymentSet{Description: in.Description, Value: in.Value}
	if in.Time != nil {
		at, err := domain.ParseISOTime(*in.Time)
		if err != nil {
			return domain.Confirmation{}, perr.Validationf("'time' must be a valid ISO 8601 date string")
		}
		set.Time = &at
	}
	if _, err := s.contracts.ByID(ctx, contractID); err != nil {
		s.logStore(ctx, err, "contract lookup failed")
		return domain.Confirmation{}, err
	}
	modified, err := s.payments.Update(ctx, paymentID, set, s.now())
	if err != nil {
		s.logStore(ctx, err, "payment update failed")
		return domain.Confirmation{}, err
	}
	if modified == 0 {
		return domain.Confirmation{}, paymentNotFound(paymentID)
	}
	return domain.Confirmation{Message: "Updated payment information for '" + paymentID + "'"}, nil
}

// PaymentList implements domain.ServicePort
func (s *Svc) PaymentList(
	ctx context.Context,
	contractID string,
	w domain.Window,
) (domain.PaymentAggregate, error) {
	if w.Start != nil && w.End != nil && !w.Start.Before(*w.End) {
		return domain.PaymentAggregate{}, perr.Validationf("'endDate' must be after 'startDate'")
	}
	if _, err := s.contracts.ByID(ctx, contractID); err != nil {
		s.logStore(ctx, err, "contract lookup failed")
		return domain.PaymentAggregate{}, err
	}
	agg, err := s.payments.Aggregate(ctx, contractID, w)
	if err != nil {
		s.logStore(ctx, err, "payment aggregation failed")
		return domain.PaymentAggregate{}, err
	}
	return agg, nil
}

// logStore records store-class failures with full detail, expected misses stay quiet
func (s *Svc) logStore(ctx context.Context, err error, msg string) {
	switch perr.CodeOf(err) {
	case perr.ErrorCodeNotFound, perr.ErrorCodeValidation:
		return
	}
	logger.C(ctx).Error().Err(err).Str("component", "contracts").Msg(msg)
}

func paymentNotFound(id string) error {
	return perr.NotFoundf("paymentId = '%s' not found in the database", id)
}
