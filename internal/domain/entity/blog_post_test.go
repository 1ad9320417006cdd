package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogPost_SetDraft(t *testing.T) {
	first := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)

	t.Run("publishing sets published_at", func(t *testing.T) {
		p := &BlogPost{}
		p.SetDraft(false, first)

		assert.False(t, p.IsDraft)
		require.NotNil(t, p.PublishedAt)
		assert.Equal(t, first, *p.PublishedAt)
		assert.True(t, p.IsPublished())
	})

	t.Run("republishing keeps original published_at", func(t *testing.T) {
		p := &BlogPost{}
		p.SetDraft(false, first)
		p.SetDraft(false, later)

		require.NotNil(t, p.PublishedAt)
		assert.Equal(t, first, *p.PublishedAt)
	})

	t.Run("drafting clears published_at", func(t *testing.T) {
		p := &BlogPost{}
		p.SetDraft(false, first)
		p.SetDraft(true, later)

		assert.True(t, p.IsDraft)
		assert.Nil(t, p.PublishedAt)
		assert.False(t, p.IsPublished())
	})

	t.Run("redundant draft toggles stay unpublished", func(t *testing.T) {
		p := &BlogPost{}
		p.SetDraft(true, first)
		p.SetDraft(true, later)

		assert.Nil(t, p.PublishedAt)
	})

	t.Run("publish after draft uses new time", func(t *testing.T) {
		p := &BlogPost{}
		p.SetDraft(false, first)
		p.SetDraft(true, later)
		p.SetDraft(false, later)

		require.NotNil(t, p.PublishedAt)
		assert.Equal(t, later, *p.PublishedAt)
	})
}

func TestBlogPost_IsAuthoredBy(t *testing.T) {
	author := uuid.New()
	p := &BlogPost{AuthorID: author}

	assert.True(t, p.IsAuthoredBy(author))
	assert.False(t, p.IsAuthoredBy(uuid.New()))
}

func TestBlogPost_SummaryTruncated(t *testing.T) {
	short := &BlogPost{Summary: "a short summary"}
	assert.Equal(t, "a short summary", short.SummaryTruncated(15))

	long := &BlogPost{Summary: strings.Repeat("word ", 20)}
	got := long.SummaryTruncated(15)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Len(t, strings.Fields(strings.TrimSuffix(got, "...")), 15)
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Jane Doe", (&User{FirstName: "Jane", LastName: "Doe"}).FullName())
	assert.Equal(t, "Jane", (&User{FirstName: "Jane"}).FullName())
	assert.Equal(t, "Doe", (&User{LastName: "Doe"}).FullName())
}
