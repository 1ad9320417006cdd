package repository

import (
	"context"
	"errors"

	"github.com/rmohit9/Healthcare-Portal/internal/domain/entity"
	domainRepo "github.com/rmohit9/Healthcare-Portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type profileRepository struct{}

func NewProfileRepository() domainRepo.ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.Profile) error {
	return db.WithContext(ctx).Omit("User").Create(profile).Error
}

func (r *profileRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Profile, error) {
	var profile entity.Profile
	err := db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
