package usecase

import (
	"context"
	"strings"

	"github.com/rmohit9/Healthcare-Portal/internal/converter"
	"github.com/rmohit9/Healthcare-Portal/internal/delivery/dto"
	"github.com/rmohit9/Healthcare-Portal/internal/domain/entity"
	"github.com/rmohit9/Healthcare-Portal/internal/domain/repository"
	"github.com/rmohit9/Healthcare-Portal/pkg/pagination"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	DoctorPageSize      = 10
	PatientPageSize     = 12
	CategoryPreviewSize = 6
	RelatedPostsLimit   = 4
)

type BlogQueryUsecase interface {
	// ResolveBlogHome returns the landing location for the caller's role.
	ResolveBlogHome(ctx context.Context, callerID uuid.UUID) (string, error)
	DoctorPostList(ctx context.Context, callerID uuid.UUID, page int) (*dto.DoctorPostListResponse, error)
	PatientBrowse(ctx context.Context, callerID uuid.UUID, req *dto.BrowsePostsRequest) (*dto.PatientBrowseResponse, error)
	PostDetail(ctx context.Context, callerID uuid.UUID, slug string) (*dto.PostDetailResponse, error)
	CategoryBrowse(ctx context.Context, slug string, page int) (*dto.CategoryBrowseResponse, error)
}

type blogQueryUsecase struct {
	uow          repository.UnitOfWork
	log          *logrus.Logger
	profileRepo  repository.ProfileRepository
	categoryRepo repository.CategoryRepository
	postRepo     repository.BlogPostRepository
}

func NewBlogQueryUsecase(
	uow repository.UnitOfWork,
	log *logrus.Logger,
	profileRepo repository.ProfileRepository,
	categoryRepo repository.CategoryRepository,
	postRepo repository.BlogPostRepository,
) BlogQueryUsecase {
	return &blogQueryUsecase{
		uow:          uow,
		log:          log,
		profileRepo:  profileRepo,
		categoryRepo: categoryRepo,
		postRepo:     postRepo,
	}
}

func (u *blogQueryUsecase) ResolveBlogHome(ctx context.Context, callerID uuid.UUID) (string, error) {
	profile, err := lookupProfile(ctx, u.uow.Reader(ctx), u.profileRepo, callerID)
	if err != nil {
		return "", err
	}
	return dashboardFor(profile.Role), nil
}

func (u *blogQueryUsecase) DoctorPostList(ctx context.Context, callerID uuid.UUID, page int) (*dto.DoctorPostListResponse, error) {
	db := u.uow.Reader(ctx)

	profile, err := lookupProfile(ctx, db, u.profileRepo, callerID)
	if err != nil {
		return nil, err
	}
	if !profile.Role.IsDoctor() {
		return nil, &PermissionDeniedError{Operation: "list own posts", RedirectTo: dashboardFor(profile.Role)}
	}

	counts, err := u.postRepo.CountByAuthor(ctx, db, profile.UserID)
	if err != nil {
		u.log.Warnf("Failed to count author posts: %+v", err)
		return nil, err
	}

	p := pagination.New(page, DoctorPageSize, counts.Total)
	posts, err := u.postRepo.FindByAuthor(ctx, db, profile.UserID, p.Size, p.Offset())
	if err != nil {
		u.log.Warnf("Failed to find author posts: %+v", err)
		return nil, err
	}
	for i := range posts {
		posts[i].Author = *profile
	}

	return &dto.DoctorPostListResponse{
		Posts:  converter.PostsToResponses(posts),
		Counts: converter.PostCountsToResponse(counts),
		Page:   p,
	}, nil
}

func (u *blogQueryUsecase) PatientBrowse(ctx context.Context, callerID uuid.UUID, req *dto.BrowsePostsRequest) (*dto.PatientBrowseResponse, error) {
	db := u.uow.Reader(ctx)

	profile, err := lookupProfile(ctx, db, u.profileRepo, callerID)
	if err != nil {
		return nil, err
	}
	if !profile.Role.IsPatient() {
		return nil, &PermissionDeniedError{Operation: "browse posts", RedirectTo: dashboardFor(profile.Role)}
	}

	categories, err := u.categoryRepo.FindAll(ctx, db)
	if err != nil {
		u.log.Warnf("Failed to find categories: %+v", err)
		return nil, err
	}

	// An id that names no category leaves the listing unfiltered.
	var selected *entity.Category
	if req.CategoryID != nil {
		for i := range categories {
			if categories[i].ID == *req.CategoryID {
				selected = &categories[i]
				break
			}
		}
	}

	filter := &entity.PostFilter{Search: strings.TrimSpace(req.Search)}
	if selected != nil {
		filter.CategoryID = &selected.ID
	}

	total, err := u.postRepo.CountPublished(ctx, db, filter)
	if err != nil {
		u.log.Warnf("Failed to count published posts: %+v", err)
		return nil, err
	}

	p := pagination.New(req.Page, PatientPageSize, total)
	posts, err := u.postRepo.FindPublished(ctx, db, filter, p.Size, p.Offset())
	if err != nil {
		u.log.Warnf("Failed to find published posts: %+v", err)
		return nil, err
	}

	// Previews honour the category filter but not the search term.
	previews := make([]dto.CategoryPreviewResponse, 0, len(categories))
	for i := range categories {
		category := &categories[i]
		if selected != nil && category.ID != selected.ID {
			continue
		}

		categoryPosts, err := u.postRepo.FindPublished(ctx, db, &entity.PostFilter{CategoryID: &category.ID}, CategoryPreviewSize, 0)
		if err != nil {
			u.log.Warnf("Failed to find category preview: %+v", err)
			return nil, err
		}
		if len(categoryPosts) == 0 {
			continue
		}

		previews = append(previews, dto.CategoryPreviewResponse{
			Category: *converter.CategoryToResponse(category),
			Posts:    converter.PostsToResponses(categoryPosts),
		})
	}

	return &dto.PatientBrowseResponse{
		Posts:            converter.PostsToResponses(posts),
		CategorizedPosts: previews,
		Categories:       converter.CategoriesToResponses(categories),
		SelectedCategory: converter.CategoryToResponse(selected),
		SearchQuery:      filter.Search,
		TotalPosts:       total,
		Page:             p,
	}, nil
}

func (u *blogQueryUsecase) PostDetail(ctx context.Context, callerID uuid.UUID, slug string) (*dto.PostDetailResponse, error) {
	db := u.uow.Reader(ctx)

	profile, err := lookupProfile(ctx, db, u.profileRepo, callerID)
	if err != nil {
		return nil, err
	}

	post, err := u.postRepo.FindBySlug(ctx, db, slug)
	if err != nil {
		u.log.Warnf("Failed to find blog post: %+v", err)
		return nil, err
	}
	if post == nil {
		return nil, &NotFoundError{Entity: "post", Key: slug}
	}

	isAuthor := post.IsAuthoredBy(profile.UserID)

	// Drafts are hidden from everyone but the author, without revealing they exist.
	if post.IsDraft && !isAuthor {
		return nil, &PermissionDeniedError{Operation: "view post", RedirectTo: dashboardFor(profile.Role)}
	}

	related, err := u.postRepo.FindPublished(ctx, db, &entity.PostFilter{
		CategoryID: &post.CategoryID,
		ExcludeID:  &post.ID,
	}, RelatedPostsLimit, 0)
	if err != nil {
		u.log.Warnf("Failed to find related posts: %+v", err)
		return nil, err
	}

	return &dto.PostDetailResponse{
		Post:         *converter.PostToResponse(post),
		RelatedPosts: converter.PostsToResponses(related),
		IsAuthor:     isAuthor,
	}, nil
}

func (u *blogQueryUsecase) CategoryBrowse(ctx context.Context, slug string, page int) (*dto.CategoryBrowseResponse, error) {
	db := u.uow.Reader(ctx)

	category, err := u.categoryRepo.FindBySlug(ctx, db, slug)
	if err != nil {
		u.log.Warnf("Failed to find category: %+v", err)
		return nil, err
	}
	if category == nil {
		return nil, &NotFoundError{Entity: "category", Key: slug}
	}

	filter := &entity.PostFilter{CategoryID: &category.ID}

	total, err := u.postRepo.CountPublished(ctx, db, filter)
	if err != nil {
		u.log.Warnf("Failed to count category posts: %+v", err)
		return nil, err
	}

	p := pagination.New(page, PatientPageSize, total)
	posts, err := u.postRepo.FindPublished(ctx, db, filter, p.Size, p.Offset())
	if err != nil {
		u.log.Warnf("Failed to find category posts: %+v", err)
		return nil, err
	}

	return &dto.CategoryBrowseResponse{
		Category:   *converter.CategoryToResponse(category),
		Posts:      converter.PostsToResponses(posts),
		TotalPosts: total,
		Page:       p,
	}, nil
}
