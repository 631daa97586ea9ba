package mocks

import (
	"context"

	"gigaleverage/internal/models"
)

type LeverageRepositoryMock struct {
	ReplaceAllFunc func(ctx context.Context, leverages []models.Leverage) error
	ListFunc       func(ctx context.Context) ([]models.LeverageRecord, error)

	Snapshots [][]models.Leverage
}

func (m *LeverageRepositoryMock) ReplaceAll(ctx context.Context, leverages []models.Leverage) error {
	m.Snapshots = append(m.Snapshots, leverages)
	if m.ReplaceAllFunc != nil {
		return m.ReplaceAllFunc(ctx, leverages)
	}
	return nil
}

func (m *LeverageRepositoryMock) List(ctx context.Context) ([]models.LeverageRecord, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.LeverageRecord{}, nil
}
