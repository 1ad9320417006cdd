package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/rmohit9/Healthcare-Portal/internal/delivery/dto"
	"github.com/rmohit9/Healthcare-Portal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	validSummary = "A practical summary for readers of the blog."
	validContent = strings.Repeat("Regular sleep, hydration and movement help. ", 5)
)

type blogFixture struct {
	store        *memStore
	uow          *fakeUnitOfWork
	users        *fakeUserRepo
	profiles     *fakeProfileRepo
	categoryRepo *fakeCategoryRepo
	posts        *fakePostRepo
	audit        *fakeAuditService
	events       *fakePublisher

	postUC     BlogPostUsecase
	queryUC    BlogQueryUsecase
	categoryUC CategoryUsecase
}

func newBlogFixture(t *testing.T) *blogFixture {
	t.Helper()

	store := newMemStore()
	f := &blogFixture{
		store:        store,
		uow:          &fakeUnitOfWork{},
		users:        &fakeUserRepo{s: store},
		profiles:     &fakeProfileRepo{s: store},
		categoryRepo: &fakeCategoryRepo{s: store},
		posts:        &fakePostRepo{s: store},
		audit:        &fakeAuditService{},
		events:       &fakePublisher{},
	}

	log := newTestLogger()
	postUC := NewBlogPostUsecase(f.uow, log, f.profiles, f.categoryRepo, f.posts, f.audit, f.events)
	postUC.(*blogPostUsecase).now = store.tick
	f.postUC = postUC
	f.queryUC = NewBlogQueryUsecase(f.uow, log, f.profiles, f.categoryRepo, f.posts)
	f.categoryUC = NewCategoryUsecase(f.uow, log, f.profiles, f.categoryRepo, f.audit)

	return f
}

func (f *blogFixture) addUser(t *testing.T, username string, role entity.Role) uuid.UUID {
	t.Helper()

	user := &entity.User{Username: username, Email: username + "@example.com", FirstName: strings.ToUpper(username[:1]) + username[1:]}
	require.NoError(t, f.users.Create(context.Background(), nil, user))
	require.NoError(t, f.profiles.Create(context.Background(), nil, &entity.Profile{
		UserID:       user.ID,
		Role:         role,
		AddressLine1: "1 Main Road",
		City:         "Pune",
		State:        "MH",
		Pincode:      "411001",
	}))
	return user.ID
}

func (f *blogFixture) addDoctor(t *testing.T, username string) uuid.UUID {
	return f.addUser(t, username, entity.RoleDoctor)
}

func (f *blogFixture) addPatient(t *testing.T, username string) uuid.UUID {
	return f.addUser(t, username, entity.RolePatient)
}

func (f *blogFixture) addCategory(t *testing.T, name string) int {
	t.Helper()

	category := &entity.Category{Name: name, Slug: baseSlug(name)}
	require.NoError(t, f.categoryRepo.Create(context.Background(), nil, category))
	return category.ID
}

func postRequest(title string, categoryID int, isDraft bool) *dto.CreatePostRequest {
	return &dto.CreatePostRequest{
		Title:      title,
		CategoryID: categoryID,
		Summary:    validSummary,
		Content:    validContent,
		IsDraft:    isDraft,
	}
}

func (f *blogFixture) createPost(t *testing.T, author uuid.UUID, req *dto.CreatePostRequest) *dto.PostResponse {
	t.Helper()

	post, err := f.postUC.Create(context.Background(), author, req)
	require.NoError(t, err)
	return post
}

func ptr[T any](v T) *T {
	return &v
}
