package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"supportpulse.app/pulse/internal/model"
	"supportpulse.app/pulse/internal/store"
)

const (
	DefaultPulseCheckLimit = 30
	MaxPulseCheckLimit     = 100
)

var ErrPulseCheckNotFound = errors.New("pulse check not found")

type SeedResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type PulseCheckService interface {
	List(ctx context.Context, limit int32) ([]model.PulseCheck, error)
	Get(ctx context.Context, id uuid.UUID) (*model.PulseCheck, error)
	// Seed loads the illustrative pulse checks once; it does nothing if any row exists.
	Seed(ctx context.Context) (*SeedResult, error)
}

type pulseCheckService struct {
	pulseChecks store.PulseCheckStore
	txRunner    TxRunner
	logger      *slog.Logger
}

func NewPulseCheckService(pulseChecks store.PulseCheckStore, txRunner TxRunner, logger *slog.Logger) PulseCheckService {
	if logger == nil {
		logger = slog.Default()
	}
	return &pulseCheckService{
		pulseChecks: pulseChecks,
		txRunner:    txRunner,
		logger:      logger,
	}
}

func (s *pulseCheckService) List(ctx context.Context, limit int32) ([]model.PulseCheck, error) {
	checks, err := s.pulseChecks.ListRecent(ctx, clampLimit(limit, DefaultPulseCheckLimit, MaxPulseCheckLimit))
	if err != nil {
		return nil, fmt.Errorf("listing pulse checks: %w", err)
	}
	return checks, nil
}

func (s *pulseCheckService) Get(ctx context.Context, id uuid.UUID) (*model.PulseCheck, error) {
	check, err := s.pulseChecks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPulseCheckNotFound
		}
		return nil, fmt.Errorf("fetching pulse check: %w", err)
	}
	return check, nil
}

func (s *pulseCheckService) Seed(ctx context.Context) (*SeedResult, error) {
	exists, err := s.pulseChecks.Any(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking pulse checks: %w", err)
	}
	if exists {
		return &SeedResult{Message: "Data already exists", Count: 1}, nil
	}

	checks := seedPulseChecks()
	if err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		for i := range checks {
			checks[i].ID = uuid.New()
			if err := sp.PulseChecks().Create(ctx, &checks[i]); err != nil {
				return fmt.Errorf("inserting pulse check: %w", err)
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "seeded pulse checks", "count", len(checks))
	return &SeedResult{Message: "Seeded successfully", Count: len(checks)}, nil
}

func clampLimit(limit, fallback, ceiling int32) int32 {
	if limit <= 0 {
		return fallback
	}
	if limit > ceiling {
		return ceiling
	}
	return limit
}
