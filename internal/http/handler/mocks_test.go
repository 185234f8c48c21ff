package handler_test

import (
	"context"

	"github.com/google/uuid"

	"supportpulse.app/pulse/internal/model"
	"supportpulse.app/pulse/internal/service"
)

type mockPulseCheckService struct {
	listFn func(ctx context.Context, limit int32) ([]model.PulseCheck, error)
	getFn  func(ctx context.Context, id uuid.UUID) (*model.PulseCheck, error)
	seedFn func(ctx context.Context) (*service.SeedResult, error)
}

func (m *mockPulseCheckService) List(ctx context.Context, limit int32) ([]model.PulseCheck, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockPulseCheckService) Get(ctx context.Context, id uuid.UUID) (*model.PulseCheck, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, service.ErrPulseCheckNotFound
}

func (m *mockPulseCheckService) Seed(ctx context.Context) (*service.SeedResult, error) {
	if m.seedFn != nil {
		return m.seedFn(ctx)
	}
	return &service.SeedResult{Message: "Seeded successfully", Count: 3}, nil
}

type mockBehaviorService struct {
	listFn    func(ctx context.Context, limit int32) ([]model.BehaviorEvent, error)
	summaryFn func(ctx context.Context, limit int32) (*model.BehaviorSummary, error)
}

func (m *mockBehaviorService) ListRecent(ctx context.Context, limit int32) ([]model.BehaviorEvent, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockBehaviorService) Summary(ctx context.Context, limit int32) (*model.BehaviorSummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(ctx, limit)
	}
	return &model.BehaviorSummary{}, nil
}
