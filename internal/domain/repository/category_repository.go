package repository

import (
	"context"

	"github.com/rmohit9/Healthcare-Portal/internal/domain/entity"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, db *gorm.DB, category *entity.Category) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Category, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Category, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*entity.Category, error)
}
