package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

const (
	fallbackSlug = "post"
	// Leaves room for a "-N" suffix inside varchar(200).
	maxSlugBaseLength = 190
	// categories.slug is varchar(100).
	maxCategorySlugLength = 100
)

// baseSlug lowercases, transliterates and hyphenates s.
func baseSlug(s string) string {
	base := truncateSlug(slug.Make(s), maxSlugBaseLength)
	if base == "" {
		return fallbackSlug
	}
	return base
}

// truncateSlug cuts s to at most max bytes. Transliteration can make a slug longer than its source.
func truncateSlug(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.Trim(s[:max], "-")
}

// uniqueSlug returns base, or base-1, base-2, ... whichever is free first.
func uniqueSlug(ctx context.Context, base string, exists func(ctx context.Context, candidate string) (bool, error)) (string, error) {
	candidate := base
	for i := 1; ; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
