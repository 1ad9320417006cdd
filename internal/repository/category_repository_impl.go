package repository

import (
	"context"
	"errors"

	"github.com/rmohit9/Healthcare-Portal/internal/domain/entity"
	domainRepo "github.com/rmohit9/Healthcare-Portal/internal/domain/repository"

	"gorm.io/gorm"
)

type categoryRepository struct{}

func NewCategoryRepository() domainRepo.CategoryRepository {
	return &categoryRepository{}
}

func (r *categoryRepository) Create(ctx context.Context, db *gorm.DB, category *entity.Category) error {
	return db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Category, error) {
	var categories []entity.Category
	err := db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Category, error) {
	var category entity.Category
	err := db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*entity.Category, error) {
	var category entity.Category
	err := db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}
