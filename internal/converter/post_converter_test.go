package converter

import (
	"strings"
	"testing"
	"time"

	"github.com/rmohit9/Healthcare-Portal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostToResponse(t *testing.T) {
	authorID := uuid.New()
	publishedAt := time.Now()
	post := &entity.BlogPost{
		ID:          uuid.New(),
		Title:       "Sleep Hygiene Basics",
		Slug:        "sleep-hygiene-basics",
		AuthorID:    authorID,
		CategoryID:  4,
		Summary:     strings.Repeat("word ", 20),
		Content:     "content",
		PublishedAt: &publishedAt,
		Author: entity.Profile{
			UserID: authorID,
			Role:   entity.RoleDoctor,
			User:   entity.User{Username: "drsmith", FirstName: "Jane", LastName: "Smith"},
		},
		Category: entity.Category{ID: 4, Name: "Sleep", Slug: "sleep"},
	}

	resp := PostToResponse(post)
	require.NotNil(t, resp)

	assert.Equal(t, "sleep-hygiene-basics", resp.Slug)
	assert.Equal(t, "Jane Smith", resp.Author.FullName)
	assert.Equal(t, "drsmith", resp.Author.Username)
	assert.Equal(t, "sleep", resp.Category.Slug)
	assert.True(t, strings.HasSuffix(resp.SummaryTruncated, "..."))
	assert.Len(t, strings.Fields(strings.TrimSuffix(resp.SummaryTruncated, "...")), SummaryWordLimit)
	assert.Equal(t, &publishedAt, resp.PublishedAt)
}

func TestPostToResponse_Nil(t *testing.T) {
	assert.Nil(t, PostToResponse(nil))
	assert.Empty(t, PostsToResponses(nil))
}

func TestUserToResponse_IncludesProfile(t *testing.T) {
	user := &entity.User{
		ID:        uuid.New(),
		Username:  "pat",
		FirstName: "Pat",
		Profile:   &entity.Profile{Role: entity.RolePatient, City: "Pune", Pincode: "411001"},
	}

	resp := UserToResponse(user)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, "patient", resp.Profile.Role)
	assert.Equal(t, "Pat", resp.FullName)
	assert.Equal(t, "411001", resp.Profile.Pincode)
}
