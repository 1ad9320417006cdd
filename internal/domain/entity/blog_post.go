package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BlogPost is authored by a doctor profile and belongs to exactly one category.
// IsDraft == false iff PublishedAt != nil.
type BlogPost struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string     `gorm:"type:varchar(200);not null" json:"title"`
	Slug        string     `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug"`
	AuthorID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"author_id"`
	CategoryID  int        `gorm:"not null;index" json:"category_id"`
	ImageURL    string     `gorm:"type:varchar(500)" json:"image_url,omitempty"`
	Summary     string     `gorm:"type:varchar(500);not null" json:"summary"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	IsDraft     bool       `gorm:"not null;default:false;index" json:"is_draft"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	PublishedAt *time.Time `gorm:"index" json:"published_at,omitempty"`

	// Relationships
	Author   Profile  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

// SetDraft moves the post between draft and published. Publishing keeps an
// existing PublishedAt; drafting clears it.
func (p *BlogPost) SetDraft(isDraft bool, now time.Time) {
	p.IsDraft = isDraft
	if isDraft {
		p.PublishedAt = nil
		return
	}
	if p.PublishedAt == nil {
		publishedAt := now
		p.PublishedAt = &publishedAt
	}
}

// IsPublished checks if post is visible to patients
func (p *BlogPost) IsPublished() bool {
	return !p.IsDraft && p.PublishedAt != nil
}

// IsAuthoredBy checks post ownership
func (p *BlogPost) IsAuthoredBy(profileID uuid.UUID) bool {
	return p.AuthorID == profileID
}

// SummaryTruncated returns the first wordLimit words of the summary.
func (p *BlogPost) SummaryTruncated(wordLimit int) string {
	words := strings.Fields(p.Summary)
	if len(words) > wordLimit {
		return strings.Join(words[:wordLimit], " ") + "..."
	}
	return p.Summary
}
