package dto

import (
	"time"

	"github.com/rmohit9/Healthcare-Portal/pkg/pagination"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePostRequest struct {
	Title      string `json:"title" validate:"required,min=5,max=200"`
	CategoryID int    `json:"category_id" validate:"required,gt=0"`
	ImageURL   string `json:"image_url" validate:"omitempty,max=500"`
	Summary    string `json:"summary" validate:"required,min=20,max=500"`
	Content    string `json:"content" validate:"required,min=100"`
	IsDraft    bool   `json:"is_draft"`
}

// UpdatePostRequest only touches the fields that are present.
type UpdatePostRequest struct {
	Title      *string `json:"title" validate:"omitempty,min=5,max=200"`
	CategoryID *int    `json:"category_id" validate:"omitempty,gt=0"`
	ImageURL   *string `json:"image_url" validate:"omitempty,max=500"`
	Summary    *string `json:"summary" validate:"omitempty,min=20,max=500"`
	Content    *string `json:"content" validate:"omitempty,min=100"`
	IsDraft    *bool   `json:"is_draft"`
}

type BrowsePostsRequest struct {
	CategoryID *int
	Search     string
	Page       int
}

// Response DTOs

type AuthorResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
	ImageURL string    `json:"image_url,omitempty"`
}

type PostResponse struct {
	ID               uuid.UUID        `json:"id"`
	Title            string           `json:"title"`
	Slug             string           `json:"slug"`
	Author           AuthorResponse   `json:"author"`
	Category         CategoryResponse `json:"category"`
	ImageURL         string           `json:"image_url,omitempty"`
	Summary          string           `json:"summary"`
	SummaryTruncated string           `json:"summary_truncated"`
	Content          string           `json:"content"`
	IsDraft          bool             `json:"is_draft"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	PublishedAt      *time.Time       `json:"published_at"`
}

type PostCountsResponse struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Draft     int64 `json:"draft"`
}

type DoctorPostListResponse struct {
	Posts  []PostResponse     `json:"posts"`
	Counts PostCountsResponse `json:"counts"`
	Page   pagination.Page    `json:"-"`
}

type CategoryPreviewResponse struct {
	Category CategoryResponse `json:"category"`
	Posts    []PostResponse   `json:"posts"`
}

type PatientBrowseResponse struct {
	Posts            []PostResponse            `json:"posts"`
	CategorizedPosts []CategoryPreviewResponse `json:"categorized_posts"`
	Categories       []CategoryResponse        `json:"categories"`
	SelectedCategory *CategoryResponse         `json:"selected_category,omitempty"`
	SearchQuery      string                    `json:"search_query,omitempty"`
	TotalPosts       int64                     `json:"total_posts"`
	Page             pagination.Page           `json:"-"`
}

type PostDetailResponse struct {
	Post         PostResponse   `json:"post"`
	RelatedPosts []PostResponse `json:"related_posts"`
	IsAuthor     bool           `json:"is_author"`
}

type CategoryBrowseResponse struct {
	Category   CategoryResponse `json:"category"`
	Posts      []PostResponse   `json:"posts"`
	TotalPosts int64            `json:"total_posts"`
	Page       pagination.Page  `json:"-"`
}
