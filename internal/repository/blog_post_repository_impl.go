package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/rmohit9/Healthcare-Portal/internal/domain/entity"
	domainRepo "github.com/rmohit9/Healthcare-Portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type blogPostRepository struct{}

func NewBlogPostRepository() domainRepo.BlogPostRepository {
	return &blogPostRepository{}
}

func (r *blogPostRepository) Create(ctx context.Context, db *gorm.DB, post *entity.BlogPost) error {
	return db.WithContext(ctx).Omit("Author", "Category").Create(post).Error
}

func (r *blogPostRepository) Update(ctx context.Context, db *gorm.DB, post *entity.BlogPost) error {
	return db.WithContext(ctx).Omit("Author", "Category").Save(post).Error
}

func (r *blogPostRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.BlogPost{})
	return result.RowsAffected, result.Error
}

func (r *blogPostRepository) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*entity.BlogPost, error) {
	var post entity.BlogPost
	err := db.WithContext(ctx).
		Preload("Author.User").
		Preload("Category").
		Where("slug = ?", slug).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *blogPostRepository) ExistsBySlug(ctx context.Context, db *gorm.DB, slug string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.BlogPost{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *blogPostRepository) FindByAuthor(ctx context.Context, db *gorm.DB, authorID uuid.UUID, limit, offset int) ([]entity.BlogPost, error) {
	var posts []entity.BlogPost
	err := db.WithContext(ctx).
		Preload("Category").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// CountByAuthor returns total, published and draft counts in a single query.
func (r *blogPostRepository) CountByAuthor(ctx context.Context, db *gorm.DB, authorID uuid.UUID) (entity.PostCounts, error) {
	var counts entity.PostCounts
	err := db.WithContext(ctx).Model(&entity.BlogPost{}).
		Select(`
			COUNT(*) as total,
			COUNT(CASE WHEN is_draft = false THEN 1 END) as published,
			COUNT(CASE WHEN is_draft = true THEN 1 END) as draft
		`).
		Where("author_id = ?", authorID).
		Scan(&counts).Error
	if err != nil {
		return entity.PostCounts{}, err
	}
	return counts, nil
}

func (r *blogPostRepository) FindPublished(ctx context.Context, db *gorm.DB, filter *entity.PostFilter, limit, offset int) ([]entity.BlogPost, error) {
	var posts []entity.BlogPost
	err := publishedQuery(db.WithContext(ctx), filter).
		Preload("Author.User").
		Preload("Category").
		Order("published_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogPostRepository) CountPublished(ctx context.Context, db *gorm.DB, filter *entity.PostFilter) (int64, error) {
	var total int64
	err := publishedQuery(db.WithContext(ctx), filter).Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func publishedQuery(db *gorm.DB, filter *entity.PostFilter) *gorm.DB {
	query := db.Model(&entity.BlogPost{}).Where("blog_posts.is_draft = ?", false)

	if filter != nil {
		if filter.CategoryID != nil {
			query = query.Where("blog_posts.category_id = ?", *filter.CategoryID)
		}
		if filter.ExcludeID != nil {
			query = query.Where("blog_posts.id <> ?", *filter.ExcludeID)
		}
		if filter.Search != "" {
			pattern := "%" + escapeLike(filter.Search) + "%"
			query = query.Where(
				"(blog_posts.title ILIKE ? OR blog_posts.summary ILIKE ? OR blog_posts.content ILIKE ?)",
				pattern, pattern, pattern,
			)
		}
	}

	return query
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
