package repository

import (
	"context"

	"github.com/rmohit9/Healthcare-Portal/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error
}
