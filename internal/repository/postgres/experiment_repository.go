package postgres

import (
	"context"
	"errors"
	"fmt"
	"shopreco/business/reco"
	"shopreco/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExperimentRepository struct {
	DB *gorm.DB
}

var _ reco.ExperimentAdminRepository = (*ExperimentRepository)(nil)

func NewExperimentRepository(db *gorm.DB) *ExperimentRepository {
	return &ExperimentRepository{DB: db}
}

func (r *ExperimentRepository) GetByName(ctx context.Context, name string) (domain.Experiment, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Experiment{}, false, fmt.Errorf("context error: %w", err)
	}

	var exp domain.Experiment

	err := r.DB.WithContext(ctx).
		Where("name = ?", name).
		First(&exp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Experiment{}, false, nil
	}
	if err != nil {
		return domain.Experiment{}, false, fmt.Errorf("failed to find experiment: %w", err)
	}

	return exp, true, nil
}

func (r *ExperimentRepository) Upsert(ctx context.Context, exp domain.Experiment) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"active",
				"allocation",
				"updated_at",
			}),
		}).
		Create(&exp).Error
	if err != nil {
		return fmt.Errorf("failed to upsert experiment: %w", err)
	}

	return nil
}
