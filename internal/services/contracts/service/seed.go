package service

import (
	"context"
	_ "embed"
	"encoding/json"

	"rentals/internal/platform/logger"
	"rentals/internal/services/contracts/domain"
)

//go:embed contracts.json
var seedContracts []byte

// EnsureSeed implements domain.SeederPort
// an empty contract collection is filled once from the embedded sample set
func (s *Svc) EnsureSeed(ctx context.Context) error {
	n, err := s.contracts.Count(ctx)
	if err != nil {
		s.logStore(ctx, err, "seed count failed")
		return err
	}
	if n > 0 {
		return nil
	}

	var seed []domain.Contract
	if err := json.Unmarshal(seedContracts, &seed); err != nil {
		return err
	}
	if err := s.contracts.SeedMany(ctx, seed); err != nil {
		s.logStore(ctx, err, "seed insert failed")
		return err
	}
	logger.Named("contracts").Info().Int("contracts", len(seed)).Msg("seeded empty contract collection")
	return nil
}
