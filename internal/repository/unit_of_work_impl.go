package repository

import (
	"context"

	domainRepo "github.com/rmohit9/Healthcare-Portal/internal/domain/repository"

	"gorm.io/gorm"
)

type unitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) domainRepo.UnitOfWork {
	return &unitOfWork{db: db}
}

func (u *unitOfWork) Reader(ctx context.Context) *gorm.DB {
	return u.db.WithContext(ctx)
}

func (u *unitOfWork) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit().Error
}
