package usecase

import (
	"context"
	"strings"

	"github.com/rmohit9/Healthcare-Portal/internal/converter"
	"github.com/rmohit9/Healthcare-Portal/internal/delivery/dto"
	"github.com/rmohit9/Healthcare-Portal/internal/domain/entity"
	"github.com/rmohit9/Healthcare-Portal/internal/domain/repository"
	"github.com/rmohit9/Healthcare-Portal/internal/service"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CategoryUsecase interface {
	ListCategories(ctx context.Context) (*dto.CategoryListResponse, error)
	GetCategory(ctx context.Context, slug string) (*dto.CategoryResponse, error)
	CreateCategory(ctx context.Context, callerID uuid.UUID, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
}

type categoryUsecase struct {
	uow          repository.UnitOfWork
	log          *logrus.Logger
	profileRepo  repository.ProfileRepository
	categoryRepo repository.CategoryRepository
	auditService service.AuditService
}

func NewCategoryUsecase(
	uow repository.UnitOfWork,
	log *logrus.Logger,
	profileRepo repository.ProfileRepository,
	categoryRepo repository.CategoryRepository,
	auditService service.AuditService,
) CategoryUsecase {
	return &categoryUsecase{
		uow:          uow,
		log:          log,
		profileRepo:  profileRepo,
		categoryRepo: categoryRepo,
		auditService: auditService,
	}
}

func (u *categoryUsecase) ListCategories(ctx context.Context) (*dto.CategoryListResponse, error) {
	categories, err := u.categoryRepo.FindAll(ctx, u.uow.Reader(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all categories: %+v", err)
		return nil, err
	}

	return &dto.CategoryListResponse{
		Categories: converter.CategoriesToResponses(categories),
		Total:      len(categories),
	}, nil
}

func (u *categoryUsecase) GetCategory(ctx context.Context, slug string) (*dto.CategoryResponse, error) {
	category, err := u.categoryRepo.FindBySlug(ctx, u.uow.Reader(ctx), slug)
	if err != nil {
		u.log.Warnf("Failed to find category: %+v", err)
		return nil, err
	}
	if category == nil {
		return nil, &NotFoundError{Entity: "category", Key: slug}
	}

	return converter.CategoryToResponse(category), nil
}

// CreateCategory is open to doctors; there is no separate admin role.
func (u *categoryUsecase) CreateCategory(ctx context.Context, callerID uuid.UUID, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	profile, err := lookupProfile(ctx, u.uow.Reader(ctx), u.profileRepo, callerID)
	if err != nil {
		return nil, err
	}
	if !profile.Role.IsDoctor() {
		return nil, &PermissionDeniedError{Operation: "create category", RedirectTo: dashboardFor(profile.Role)}
	}

	name, err := checkLength("name", req.Name, 2, 100)
	if err != nil {
		return nil, err
	}

	category := &entity.Category{
		Name:        name,
		Slug:        truncateSlug(slug.Make(name), maxCategorySlugLength),
		Description: strings.TrimSpace(req.Description),
	}
	if category.Slug == "" {
		return nil, &ValidationError{Field: "name", Reason: "must contain letters or digits"}
	}

	err = u.uow.Transaction(ctx, func(tx *gorm.DB) error {
		if err := u.categoryRepo.Create(ctx, tx, category); err != nil {
			if isDuplicateKeyError(err, "name") || isDuplicateKeyError(err, "slug") {
				return &ValidationError{Field: "name", Reason: "a category with this name already exists"}
			}
			u.log.Warnf("Failed to create category: %+v", err)
			return err
		}

		u.auditService.LogCreate(ctx, tx, &profile.UserID, entity.AuditActionCategoryCreate, "category", category.Slug, converter.CategoryToResponse(category))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return converter.CategoryToResponse(category), nil
}
