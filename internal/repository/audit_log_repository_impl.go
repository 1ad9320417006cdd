package repository

import (
	"context"

	"github.com/rmohit9/Healthcare-Portal/internal/domain/entity"
	domainRepo "github.com/rmohit9/Healthcare-Portal/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	return db.WithContext(ctx).Omit("User").Create(log).Error
}
