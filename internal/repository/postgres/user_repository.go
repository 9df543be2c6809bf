package postgres

import (
	"context"
	"errors"
	"fmt"
	"shopreco/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

// FindByID reports existence via the bool so callers can tell an unknown
// user apart from a storage failure.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, false, fmt.Errorf("context error: %w", err)
	}

	var user domain.User

	err := r.DB.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, fmt.Errorf("failed to find user: %w", err)
	}

	return user, true, nil
}
