package entity

import "github.com/google/uuid"

// PostFilter is a domain-level filter for querying published posts.
// Used by repository layer to avoid coupling with delivery DTOs.
type PostFilter struct {
	CategoryID *int   // Narrow to a single category
	Search     string // Case-insensitive match on title, summary or content
	ExcludeID  *uuid.UUID
}

// PostCounts aggregates an author's posts by state.
type PostCounts struct {
	Total     int64
	Published int64
	Draft     int64
}
