package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rmohit9/Healthcare-Portal/internal/domain/entity"
	"github.com/rmohit9/Healthcare-Portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// lookupProfile resolves the caller's profile. Every authorization decision starts here.
func lookupProfile(ctx context.Context, db *gorm.DB, profileRepo repository.ProfileRepository, callerID uuid.UUID) (*entity.Profile, error) {
	if callerID == uuid.Nil {
		return nil, ErrAuthRequired
	}

	profile, err := profileRepo.FindByUserID(ctx, db, callerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, &NotFoundError{Entity: "profile", Key: callerID.String(), RedirectTo: HomeLocation}
	}
	return profile, nil
}

// checkLength trims value and enforces a rune count in [minLen, maxLen]. maxLen <= 0 means unbounded.
func checkLength(field, value string, minLen, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	n := utf8.RuneCountInString(value)
	if n < minLen {
		return "", &ValidationError{Field: field, Reason: fmt.Sprintf("must be at least %d characters", minLen)}
	}
	if maxLen > 0 && n > maxLen {
		return "", &ValidationError{Field: field, Reason: fmt.Sprintf("must be at most %d characters", maxLen)}
	}
	return value, nil
}
