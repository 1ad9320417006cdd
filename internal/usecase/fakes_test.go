package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rmohit9/Healthcare-Portal/internal/domain/entity"
	"github.com/rmohit9/Healthcare-Portal/internal/service"
	"github.com/rmohit9/Healthcare-Portal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gorm.io/gorm"
)

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func newTestLogger() *logrus.Logger {
	logger, _ := test.NewNullLogger()
	return logger
}

// memStore backs every fake repository so joins (author, category) resolve
// the way preloads do against Postgres.
type memStore struct {
	mu         sync.Mutex
	users      map[uuid.UUID]entity.User
	profiles   map[uuid.UUID]entity.Profile
	categories []entity.Category
	posts      []entity.BlogPost
	clock      time.Time
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[uuid.UUID]entity.User{},
		profiles: map[uuid.UUID]entity.Profile{},
		clock:    time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

// tick returns a strictly increasing timestamp.
func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

func (s *memStore) hydrate(post entity.BlogPost) entity.BlogPost {
	if profile, ok := s.profiles[post.AuthorID]; ok {
		profile.User = s.users[profile.UserID]
		post.Author = profile
	}
	for _, c := range s.categories {
		if c.ID == post.CategoryID {
			post.Category = c
		}
	}
	return post
}

// fakeUnitOfWork runs fn directly; the fakes ignore the *gorm.DB they get.
type fakeUnitOfWork struct {
	transactions int
}

func (f *fakeUnitOfWork) Reader(ctx context.Context) *gorm.DB {
	return nil
}

func (f *fakeUnitOfWork) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	f.transactions++
	return fn(nil)
}

type fakeUserRepo struct{ s *memStore }

func (r *fakeUserRepo) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return uniqueViolation("uni_users_username")
		}
		if u.Email == user.Email {
			return uniqueViolation("uni_users_email")
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = r.s.tick()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	stored.Profile = nil
	r.s.users[user.ID] = stored
	return nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	if p, ok := r.s.profiles[id]; ok {
		u.Profile = &p
	}
	return &u, nil
}

type fakeProfileRepo struct{ s *memStore }

func (r *fakeProfileRepo) Create(ctx context.Context, db *gorm.DB, profile *entity.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.profiles[profile.UserID]; ok {
		return uniqueViolation("user_profiles_pkey")
	}
	stored := *profile
	stored.User = entity.User{}
	r.s.profiles[profile.UserID] = stored
	return nil
}

func (r *fakeProfileRepo) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, nil
	}
	p.User = r.s.users[userID]
	return &p, nil
}

type fakeCategoryRepo struct{ s *memStore }

func (r *fakeCategoryRepo) Create(ctx context.Context, db *gorm.DB, category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if c.Name == category.Name {
			return uniqueViolation("uni_categories_name")
		}
		if c.Slug == category.Slug {
			return uniqueViolation("uni_categories_slug")
		}
	}
	category.ID = len(r.s.categories) + 1
	category.CreatedAt = r.s.tick()
	r.s.categories = append(r.s.categories, *category)
	return nil
}

func (r *fakeCategoryRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := append([]entity.Category(nil), r.s.categories...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if c.Slug == slug {
			category := c
			return &category, nil
		}
	}
	return nil, nil
}

type fakePostRepo struct {
	s *memStore
	// beforeCreate runs ahead of the insert; a non-nil error aborts it.
	beforeCreate func(post *entity.BlogPost) error
	createCalls  int
}

func (r *fakePostRepo) Create(ctx context.Context, db *gorm.DB, post *entity.BlogPost) error {
	r.createCalls++
	if r.beforeCreate != nil {
		if err := r.beforeCreate(post); err != nil {
			return err
		}
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.posts {
		if p.Slug == post.Slug {
			return uniqueViolation("uni_blog_posts_slug")
		}
	}
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	post.CreatedAt = r.s.tick()
	post.UpdatedAt = post.CreatedAt

	stored := *post
	stored.Author = entity.Profile{}
	stored.Category = entity.Category{}
	r.s.posts = append(r.s.posts, stored)
	return nil
}

// insert bypasses the hooks; used to seed competing rows.
func (r *fakePostRepo) insert(post entity.BlogPost) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	post.CreatedAt = r.s.tick()
	r.s.posts = append(r.s.posts, post)
}

func (r *fakePostRepo) Update(ctx context.Context, db *gorm.DB, post *entity.BlogPost) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, p := range r.s.posts {
		if p.ID == post.ID {
			post.UpdatedAt = r.s.tick()
			stored := *post
			stored.Author = entity.Profile{}
			stored.Category = entity.Category{}
			r.s.posts[i] = stored
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakePostRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, p := range r.s.posts {
		if p.ID == id {
			r.s.posts = append(r.s.posts[:i], r.s.posts[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakePostRepo) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*entity.BlogPost, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.posts {
		if p.Slug == slug {
			post := r.s.hydrate(p)
			return &post, nil
		}
	}
	return nil, nil
}

func (r *fakePostRepo) ExistsBySlug(ctx context.Context, db *gorm.DB, slug string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.posts {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePostRepo) FindByAuthor(ctx context.Context, db *gorm.DB, authorID uuid.UUID, limit, offset int) ([]entity.BlogPost, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entity.BlogPost
	for _, p := range r.s.posts {
		if p.AuthorID == authorID {
			out = append(out, r.s.hydrate(p))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return window(out, limit, offset), nil
}

func (r *fakePostRepo) CountByAuthor(ctx context.Context, db *gorm.DB, authorID uuid.UUID) (entity.PostCounts, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var counts entity.PostCounts
	for _, p := range r.s.posts {
		if p.AuthorID != authorID {
			continue
		}
		counts.Total++
		if p.IsDraft {
			counts.Draft++
		} else {
			counts.Published++
		}
	}
	return counts, nil
}

func (r *fakePostRepo) published(filter *entity.PostFilter) []entity.BlogPost {
	var out []entity.BlogPost
	for _, p := range r.s.posts {
		if p.IsDraft {
			continue
		}
		if filter != nil {
			if filter.CategoryID != nil && p.CategoryID != *filter.CategoryID {
				continue
			}
			if filter.ExcludeID != nil && p.ID == *filter.ExcludeID {
				continue
			}
			if filter.Search != "" && !containsFold(filter.Search, p.Title, p.Summary, p.Content) {
				continue
			}
		}
		out = append(out, r.s.hydrate(p))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PublishedAt.After(*out[j].PublishedAt) })
	return out
}

func (r *fakePostRepo) FindPublished(ctx context.Context, db *gorm.DB, filter *entity.PostFilter, limit, offset int) ([]entity.BlogPost, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return window(r.published(filter), limit, offset), nil
}

func (r *fakePostRepo) CountPublished(ctx context.Context, db *gorm.DB, filter *entity.PostFilter) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.published(filter))), nil
}

func containsFold(needle string, haystacks ...string) bool {
	needle = strings.ToLower(needle)
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

func window(posts []entity.BlogPost, limit, offset int) []entity.BlogPost {
	if offset >= len(posts) {
		return nil
	}
	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end]
}

type auditCall struct {
	Action   string
	EntityID string
}

type fakeAuditService struct {
	calls []auditCall
}

func (f *fakeAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) {
	f.calls = append(f.calls, auditCall{Action: action, EntityID: entityID})
}

func (f *fakeAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) {
	f.calls = append(f.calls, auditCall{Action: action, EntityID: entityID})
}

func (f *fakeAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) {
	f.calls = append(f.calls, auditCall{Action: action, EntityID: entityID})
}

func (f *fakeAuditService) actions() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.Action
	}
	return out
}

type fakePublisher struct {
	events []service.PostEvent
}

func (f *fakePublisher) Publish(ctx context.Context, event service.PostEvent) {
	f.events = append(f.events, event)
}

func (f *fakePublisher) types() []string {
	out := make([]string, len(f.events))
	for i, e := range f.events {
		out[i] = e.Type
	}
	return out
}

type fakeTokenStore struct {
	mu     sync.Mutex
	tokens map[string]time.Duration
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]time.Duration{}}
}

func tokenStoreKey(tokenType jwt.TokenType, userID uuid.UUID, tokenID string) string {
	return string(tokenType) + ":" + userID.String() + ":" + tokenID
}

func (f *fakeTokenStore) Store(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[tokenStoreKey(tokenType, userID, tokenID)] = ttl
	return nil
}

func (f *fakeTokenStore) Exists(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.tokens[tokenStoreKey(tokenType, userID, tokenID)]
	return ok, nil
}

func (f *fakeTokenStore) Revoke(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, tokenStoreKey(tokenType, userID, tokenID))
	return nil
}

func (f *fakeTokenStore) Consume(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := tokenStoreKey(tokenType, userID, tokenID)
	_, ok := f.tokens[key]
	delete(f.tokens, key)
	return ok, nil
}
