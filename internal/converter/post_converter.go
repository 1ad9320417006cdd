package converter

import (
	"github.com/rmohit9/Healthcare-Portal/internal/delivery/dto"
	"github.com/rmohit9/Healthcare-Portal/internal/domain/entity"
)

// Word limit of summary_truncated in list views.
const SummaryWordLimit = 15

// PostToResponse converts a BlogPost entity to PostResponse DTO.
// Author.User and Category should be preloaded.
func PostToResponse(post *entity.BlogPost) *dto.PostResponse {
	if post == nil {
		return nil
	}

	return &dto.PostResponse{
		ID:               post.ID,
		Title:            post.Title,
		Slug:             post.Slug,
		Author:           AuthorToResponse(&post.Author),
		Category:         *CategoryToResponse(&post.Category),
		ImageURL:         post.ImageURL,
		Summary:          post.Summary,
		SummaryTruncated: post.SummaryTruncated(SummaryWordLimit),
		Content:          post.Content,
		IsDraft:          post.IsDraft,
		CreatedAt:        post.CreatedAt,
		UpdatedAt:        post.UpdatedAt,
		PublishedAt:      post.PublishedAt,
	}
}

func PostsToResponses(posts []entity.BlogPost) []dto.PostResponse {
	responses := make([]dto.PostResponse, len(posts))
	for i := range posts {
		responses[i] = *PostToResponse(&posts[i])
	}
	return responses
}

func PostCountsToResponse(counts entity.PostCounts) dto.PostCountsResponse {
	return dto.PostCountsResponse{
		Total:     counts.Total,
		Published: counts.Published,
		Draft:     counts.Draft,
	}
}

// PostAuditValue is the snapshot stored in audit metadata.
func PostAuditValue(post *entity.BlogPost) map[string]interface{} {
	return map[string]interface{}{
		"title":        post.Title,
		"slug":         post.Slug,
		"category_id":  post.CategoryID,
		"is_draft":     post.IsDraft,
		"published_at": post.PublishedAt,
	}
}
