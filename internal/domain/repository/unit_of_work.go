package repository

import (
	"context"

	"gorm.io/gorm"
)

// UnitOfWork hands repositories the session they run against.
// Everything called with the tx passed to fn commits or rolls back together.
type UnitOfWork interface {
	Reader(ctx context.Context) *gorm.DB
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}
