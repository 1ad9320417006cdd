package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rmohit9/Healthcare-Portal/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
)

// Where a denied or misplaced caller is sent instead.
const (
	HomeLocation          = "/"
	DoctorPostsLocation   = "/api/v1/blog/my-posts"
	PatientBrowseLocation = "/api/v1/blog/browse"
)

var (
	ErrAuthRequired       = errors.New("authentication required")
	ErrSlugConflict       = errors.New("could not allocate a unique slug")
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// PermissionDeniedError carries the location the caller should go to instead.
type PermissionDeniedError struct {
	Operation  string
	RedirectTo string
}

func (e *PermissionDeniedError) Error() string {
	return "permission denied: " + e.Operation
}

type NotFoundError struct {
	Entity     string
	Key        string
	RedirectTo string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

// dashboardFor is the landing page of each role.
func dashboardFor(role entity.Role) string {
	return entity.MatchRole(role,
		func() string { return PatientBrowseLocation },
		func() string { return DoctorPostsLocation },
	)
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// on a constraint whose name contains constraintName
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
