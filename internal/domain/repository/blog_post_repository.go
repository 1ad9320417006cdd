package repository

import (
	"context"

	"github.com/rmohit9/Healthcare-Portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogPostRepository interface {
	Create(ctx context.Context, db *gorm.DB, post *entity.BlogPost) error
	Update(ctx context.Context, db *gorm.DB, post *entity.BlogPost) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*entity.BlogPost, error)
	ExistsBySlug(ctx context.Context, db *gorm.DB, slug string) (bool, error)

	// Author-scoped, drafts included, newest created first.
	FindByAuthor(ctx context.Context, db *gorm.DB, authorID uuid.UUID, limit, offset int) ([]entity.BlogPost, error)
	CountByAuthor(ctx context.Context, db *gorm.DB, authorID uuid.UUID) (entity.PostCounts, error)

	// Published only, newest published first.
	FindPublished(ctx context.Context, db *gorm.DB, filter *entity.PostFilter, limit, offset int) ([]entity.BlogPost, error)
	CountPublished(ctx context.Context, db *gorm.DB, filter *entity.PostFilter) (int64, error)
}
