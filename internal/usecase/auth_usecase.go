package usecase

import (
	"context"
	"strings"

	"github.com/rmohit9/Healthcare-Portal/internal/converter"
	"github.com/rmohit9/Healthcare-Portal/internal/delivery/dto"
	"github.com/rmohit9/Healthcare-Portal/internal/domain/entity"
	"github.com/rmohit9/Healthcare-Portal/internal/domain/repository"
	"github.com/rmohit9/Healthcare-Portal/internal/infrastructure/cache"
	"github.com/rmohit9/Healthcare-Portal/internal/service"
	"github.com/rmohit9/Healthcare-Portal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const passwordMinLength = 8

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	uow          repository.UnitOfWork
	log          *logrus.Logger
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	auditService service.AuditService
	jwtService   *jwt.JWTService
	tokenStore   cache.TokenStore
}

func NewAuthUsecase(
	uow repository.UnitOfWork,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	tokenStore cache.TokenStore,
) AuthUsecase {
	return &authUsecase{
		uow:          uow,
		log:          log,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		auditService: auditService,
		jwtService:   jwtService,
		tokenStore:   tokenStore,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	username, err := checkLength("username", req.Username, 3, 150)
	if err != nil {
		return nil, err
	}
	if len(req.Password) < passwordMinLength {
		return nil, &ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}
	role, err := entity.ParseRole(req.Role)
	if err != nil {
		return nil, &ValidationError{Field: "role", Reason: "must be patient or doctor"}
	}
	pincode := strings.TrimSpace(req.Pincode)
	if !isPincode(pincode) {
		return nil, &ValidationError{Field: "pincode", Reason: "must be 5 or 6 digits"}
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Username:  username,
		Email:     strings.TrimSpace(req.Email),
		Password:  string(hashedPassword),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	}

	err = u.uow.Transaction(ctx, func(tx *gorm.DB) error {
		if err := u.userRepo.Create(ctx, tx, user); err != nil {
			if isDuplicateKeyError(err, "username") {
				return ErrUsernameExists
			}
			if isDuplicateKeyError(err, "email") {
				return ErrEmailExists
			}
			u.log.Warnf("Failed to create user: %+v", err)
			return err
		}

		profile := &entity.Profile{
			UserID:       user.ID,
			Role:         role,
			ImageURL:     strings.TrimSpace(req.ImageURL),
			AddressLine1: strings.TrimSpace(req.AddressLine1),
			City:         strings.TrimSpace(req.City),
			State:        strings.TrimSpace(req.State),
			Pincode:      pincode,
		}
		if err := u.profileRepo.Create(ctx, tx, profile); err != nil {
			u.log.Warnf("Failed to create profile: %+v", err)
			return err
		}
		user.Profile = profile

		u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), map[string]interface{}{
			"username": user.Username,
			"role":     role.String(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func isPincode(s string) bool {
	if len(s) < 5 || len(s) > 6 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByUsername(ctx, u.uow.Reader(ctx), strings.TrimSpace(req.Username))
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, accessTokenID, err := u.issueTokens(ctx, user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	err = u.uow.Transaction(ctx, func(tx *gorm.DB) error {
		u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionUserLogin, "session", accessTokenID, nil)
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to record login: %+v", err)
	}

	return tokens, nil
}

// issueTokens signs a new access/refresh pair and registers both in the token store.
func (u *authUsecase) issueTokens(ctx context.Context, userID uuid.UUID, username string) (*dto.TokenResponse, string, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, username)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, "", err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, username)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, "", err
	}

	if err := u.tokenStore.Store(ctx, jwt.AccessToken, userID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, "", err
	}

	if err := u.tokenStore.Store(ctx, jwt.RefreshToken, userID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, "", err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, accessTokenID, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error {
	if err := u.tokenStore.Revoke(ctx, jwt.AccessToken, userID, accessTokenID); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}

	if refreshTokenID != "" {
		if err := u.tokenStore.Revoke(ctx, jwt.RefreshToken, userID, refreshTokenID); err != nil {
			u.log.Warnf("Failed to revoke refresh token: %+v", err)
			return err
		}
	}

	err := u.uow.Transaction(ctx, func(tx *gorm.DB) error {
		u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionUserLogout, "session", accessTokenID, nil)
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to record logout: %+v", err)
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	// Rotation: the old refresh token is single use.
	consumed, err := u.tokenStore.Consume(ctx, jwt.RefreshToken, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to consume refresh token: %+v", err)
		return nil, err
	}
	if !consumed {
		return nil, ErrTokenRevoked
	}

	tokens, _, err := u.issueTokens(ctx, claims.UserID, claims.Username)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.uow.Reader(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Entity: "user", Key: userID.String()}
	}

	return converter.UserToResponse(user), nil
}
