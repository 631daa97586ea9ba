package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gigaleverage/internal/models"
)

// LeverageRepository stores ordered snapshots of the leverage list.
type LeverageRepository interface {
	ReplaceAll(ctx context.Context, leverages []models.Leverage) error
	List(ctx context.Context) ([]models.LeverageRecord, error)
}

type leverageRepository struct {
	db *gorm.DB
}

func NewLeverageRepository(db *gorm.DB) LeverageRepository {
	return &leverageRepository{db: db}
}

// ReplaceAll overwrites the stored snapshot with leverages, recording each
// entry's list position.
func (r *leverageRepository) ReplaceAll(ctx context.Context, leverages []models.Leverage) error {
	records := make([]models.LeverageRecord, 0, len(leverages))
	for i, lev := range leverages {
		records = append(records, models.LeverageRecord{
			ID:             lev.ID,
			Position:       i,
			ProviderID:     lev.Provider.ID,
			DataStreamID:   lev.DataStream.ID,
			DataStreamName: lev.DataStream.Name,
		})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.LeverageRecord{}).Error; err != nil {
			return fmt.Errorf("clearing leverages: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.Create(&records).Error; err != nil {
			return fmt.Errorf("inserting leverages: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replacing leverage snapshot: %w", err)
	}
	return nil
}

func (r *leverageRepository) List(ctx context.Context) ([]models.LeverageRecord, error) {
	var records []models.LeverageRecord
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("listing leverages: %w", err)
	}
	return records, nil
}
