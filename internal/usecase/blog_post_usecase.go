package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rmohit9/Healthcare-Portal/internal/converter"
	"github.com/rmohit9/Healthcare-Portal/internal/delivery/dto"
	"github.com/rmohit9/Healthcare-Portal/internal/domain/entity"
	"github.com/rmohit9/Healthcare-Portal/internal/domain/repository"
	"github.com/rmohit9/Healthcare-Portal/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	titleMinLength   = 5
	titleMaxLength   = 200
	summaryMinLength = 20
	summaryMaxLength = 500
	contentMinLength = 100
	imageURLMaxLen   = 500
)

// errSlugTaken marks a unique violation on blog_posts.slug inside a create attempt.
var errSlugTaken = errors.New("slug taken")

type BlogPostUsecase interface {
	Create(ctx context.Context, callerID uuid.UUID, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	Edit(ctx context.Context, callerID uuid.UUID, slug string, req *dto.UpdatePostRequest) (*dto.PostResponse, error)
	Delete(ctx context.Context, callerID uuid.UUID, slug string) error
}

type blogPostUsecase struct {
	uow          repository.UnitOfWork
	log          *logrus.Logger
	profileRepo  repository.ProfileRepository
	categoryRepo repository.CategoryRepository
	postRepo     repository.BlogPostRepository
	auditService service.AuditService
	events       service.PostEventPublisher
	now          func() time.Time
}

func NewBlogPostUsecase(
	uow repository.UnitOfWork,
	log *logrus.Logger,
	profileRepo repository.ProfileRepository,
	categoryRepo repository.CategoryRepository,
	postRepo repository.BlogPostRepository,
	auditService service.AuditService,
	events service.PostEventPublisher,
) BlogPostUsecase {
	return &blogPostUsecase{
		uow:          uow,
		log:          log,
		profileRepo:  profileRepo,
		categoryRepo: categoryRepo,
		postRepo:     postRepo,
		auditService: auditService,
		events:       events,
		now:          time.Now,
	}
}

func (u *blogPostUsecase) Create(ctx context.Context, callerID uuid.UUID, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	profile, err := lookupProfile(ctx, u.uow.Reader(ctx), u.profileRepo, callerID)
	if err != nil {
		return nil, err
	}
	if !profile.Role.IsDoctor() {
		return nil, &PermissionDeniedError{Operation: "create post", RedirectTo: dashboardFor(profile.Role)}
	}

	post := &entity.BlogPost{
		AuthorID:   profile.UserID,
		CategoryID: req.CategoryID,
	}
	if post.Title, err = checkLength("title", req.Title, titleMinLength, titleMaxLength); err != nil {
		return nil, err
	}
	if post.Summary, err = checkLength("summary", req.Summary, summaryMinLength, summaryMaxLength); err != nil {
		return nil, err
	}
	if post.Content, err = checkLength("content", req.Content, contentMinLength, 0); err != nil {
		return nil, err
	}
	if post.ImageURL, err = checkLength("image_url", req.ImageURL, 0, imageURLMaxLen); err != nil {
		return nil, err
	}
	post.SetDraft(req.IsDraft, u.now())

	// The existence check and the insert can race with another writer; the
	// unique index decides, and one fresh attempt recomputes the slug.
	err = u.createOnce(ctx, profile, post)
	if errors.Is(err, errSlugTaken) {
		u.log.Warnf("Slug %q was taken concurrently, retrying", post.Slug)
		post.ID = uuid.Nil
		err = u.createOnce(ctx, profile, post)
		if errors.Is(err, errSlugTaken) {
			return nil, ErrSlugConflict
		}
	}
	if err != nil {
		return nil, err
	}

	if post.IsPublished() {
		u.events.Publish(ctx, service.NewPostEvent(service.PostEventPublished, post, u.now()))
	}

	return converter.PostToResponse(post), nil
}

func (u *blogPostUsecase) createOnce(ctx context.Context, profile *entity.Profile, post *entity.BlogPost) error {
	return u.uow.Transaction(ctx, func(tx *gorm.DB) error {
		category, err := u.categoryRepo.FindByID(ctx, tx, post.CategoryID)
		if err != nil {
			u.log.Warnf("Failed to find category: %+v", err)
			return err
		}
		if category == nil {
			return &ValidationError{Field: "category_id", Reason: "category does not exist"}
		}

		post.Slug, err = uniqueSlug(ctx, baseSlug(post.Title), func(ctx context.Context, candidate string) (bool, error) {
			return u.postRepo.ExistsBySlug(ctx, tx, candidate)
		})
		if err != nil {
			u.log.Warnf("Failed to allocate slug: %+v", err)
			return err
		}

		if err := u.postRepo.Create(ctx, tx, post); err != nil {
			if isDuplicateKeyError(err, "slug") {
				return errSlugTaken
			}
			if isForeignKeyError(err, "category") {
				return &ValidationError{Field: "category_id", Reason: "category does not exist"}
			}
			u.log.Warnf("Failed to create blog post: %+v", err)
			return err
		}

		post.Author = *profile
		post.Category = *category

		u.auditService.LogCreate(ctx, tx, &profile.UserID, entity.AuditActionPostCreate, "blog_post", post.ID.String(), converter.PostAuditValue(post))
		return nil
	})
}

func (u *blogPostUsecase) Edit(ctx context.Context, callerID uuid.UUID, slug string, req *dto.UpdatePostRequest) (*dto.PostResponse, error) {
	profile, err := lookupProfile(ctx, u.uow.Reader(ctx), u.profileRepo, callerID)
	if err != nil {
		return nil, err
	}

	var (
		post         *entity.BlogPost
		wasPublished bool
	)
	err = u.uow.Transaction(ctx, func(tx *gorm.DB) error {
		var err error
		post, err = u.postRepo.FindBySlug(ctx, tx, slug)
		if err != nil {
			u.log.Warnf("Failed to find blog post: %+v", err)
			return err
		}
		if post == nil {
			return &NotFoundError{Entity: "post", Key: slug}
		}
		if !post.IsAuthoredBy(profile.UserID) {
			return &PermissionDeniedError{Operation: "edit post", RedirectTo: dashboardFor(profile.Role)}
		}

		wasPublished = post.IsPublished()
		oldValue := converter.PostAuditValue(post)

		if err := u.applyUpdate(ctx, tx, post, req); err != nil {
			return err
		}

		if err := u.postRepo.Update(ctx, tx, post); err != nil {
			if isForeignKeyError(err, "category") {
				return &ValidationError{Field: "category_id", Reason: "category does not exist"}
			}
			u.log.Warnf("Failed to update blog post: %+v", err)
			return err
		}

		u.auditService.LogUpdate(ctx, tx, &profile.UserID, entity.AuditActionPostUpdate, "blog_post", post.ID.String(), oldValue, converter.PostAuditValue(post))
		return nil
	})
	if err != nil {
		return nil, err
	}

	switch isPublished := post.IsPublished(); {
	case isPublished && !wasPublished:
		u.events.Publish(ctx, service.NewPostEvent(service.PostEventPublished, post, u.now()))
	case !isPublished && wasPublished:
		u.events.Publish(ctx, service.NewPostEvent(service.PostEventUnpublished, post, u.now()))
	}

	return converter.PostToResponse(post), nil
}

// applyUpdate copies the supplied fields onto post. The slug is never regenerated.
func (u *blogPostUsecase) applyUpdate(ctx context.Context, tx *gorm.DB, post *entity.BlogPost, req *dto.UpdatePostRequest) error {
	var err error
	if req.Title != nil {
		if post.Title, err = checkLength("title", *req.Title, titleMinLength, titleMaxLength); err != nil {
			return err
		}
	}
	if req.Summary != nil {
		if post.Summary, err = checkLength("summary", *req.Summary, summaryMinLength, summaryMaxLength); err != nil {
			return err
		}
	}
	if req.Content != nil {
		if post.Content, err = checkLength("content", *req.Content, contentMinLength, 0); err != nil {
			return err
		}
	}
	if req.ImageURL != nil {
		if post.ImageURL, err = checkLength("image_url", *req.ImageURL, 0, imageURLMaxLen); err != nil {
			return err
		}
	}
	if req.CategoryID != nil && *req.CategoryID != post.CategoryID {
		category, err := u.categoryRepo.FindByID(ctx, tx, *req.CategoryID)
		if err != nil {
			u.log.Warnf("Failed to find category: %+v", err)
			return err
		}
		if category == nil {
			return &ValidationError{Field: "category_id", Reason: "category does not exist"}
		}
		post.CategoryID = category.ID
		post.Category = *category
	}
	if req.IsDraft != nil {
		post.SetDraft(*req.IsDraft, u.now())
	}
	return nil
}

func (u *blogPostUsecase) Delete(ctx context.Context, callerID uuid.UUID, slug string) error {
	profile, err := lookupProfile(ctx, u.uow.Reader(ctx), u.profileRepo, callerID)
	if err != nil {
		return err
	}

	var post *entity.BlogPost
	err = u.uow.Transaction(ctx, func(tx *gorm.DB) error {
		var err error
		post, err = u.postRepo.FindBySlug(ctx, tx, slug)
		if err != nil {
			u.log.Warnf("Failed to find blog post: %+v", err)
			return err
		}
		if post == nil {
			return &NotFoundError{Entity: "post", Key: slug}
		}
		if !post.IsAuthoredBy(profile.UserID) {
			return &PermissionDeniedError{Operation: "delete post", RedirectTo: dashboardFor(profile.Role)}
		}

		affected, err := u.postRepo.Delete(ctx, tx, post.ID)
		if err != nil {
			u.log.Warnf("Failed to delete blog post: %+v", err)
			return err
		}
		if affected == 0 {
			return &NotFoundError{Entity: "post", Key: slug}
		}

		u.auditService.LogDelete(ctx, tx, &profile.UserID, entity.AuditActionPostDelete, "blog_post", post.ID.String(), converter.PostAuditValue(post))
		return nil
	})
	if err != nil {
		return err
	}

	u.events.Publish(ctx, service.NewPostEvent(service.PostEventDeleted, post, u.now()))
	return nil
}
