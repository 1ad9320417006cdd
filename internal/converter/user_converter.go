package converter

import (
	"github.com/rmohit9/Healthcare-Portal/internal/delivery/dto"
	"github.com/rmohit9/Healthcare-Portal/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
// Includes the profile when it is loaded
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  user.FullName(),
		Profile:   ProfileToResponse(user.Profile),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func ProfileToResponse(profile *entity.Profile) *dto.ProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.ProfileResponse{
		Role:         profile.Role.String(),
		ImageURL:     profile.ImageURL,
		AddressLine1: profile.AddressLine1,
		City:         profile.City,
		State:        profile.State,
		Pincode:      profile.Pincode,
	}
}

// AuthorToResponse expects Profile.User to be preloaded for the name fields.
func AuthorToResponse(profile *entity.Profile) dto.AuthorResponse {
	return dto.AuthorResponse{
		UserID:   profile.UserID,
		Username: profile.User.Username,
		FullName: profile.User.FullName(),
		ImageURL: profile.ImageURL,
	}
}
