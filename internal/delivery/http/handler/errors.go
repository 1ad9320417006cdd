package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rmohit9/Healthcare-Portal/internal/usecase"
	"github.com/rmohit9/Healthcare-Portal/pkg/response"
)

// writeError maps usecase errors onto status codes. Anything unrecognised is a 500 with fallback as the message.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var (
		validationErr *usecase.ValidationError
		deniedErr     *usecase.PermissionDeniedError
		notFoundErr   *usecase.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		response.ValidationError(w, map[string]string{validationErr.Field: validationErr.Reason})
	case errors.As(err, &deniedErr):
		response.Error(w, http.StatusForbidden, "You don't have permission to "+deniedErr.Operation, redirectBody(deniedErr.RedirectTo))
	case errors.As(err, &notFoundErr):
		response.Error(w, http.StatusNotFound, capitalize(notFoundErr.Entity)+" not found", redirectBody(notFoundErr.RedirectTo))
	case errors.Is(err, usecase.ErrAuthRequired),
		errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrInvalidToken),
		errors.Is(err, usecase.ErrTokenRevoked):
		response.Unauthorized(w, err.Error())
	case errors.Is(err, usecase.ErrUsernameExists),
		errors.Is(err, usecase.ErrEmailExists),
		errors.Is(err, usecase.ErrSlugConflict):
		response.Conflict(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}

func redirectBody(location string) interface{} {
	if location == "" {
		return nil
	}
	return map[string]string{"redirect_to": location}
}

func capitalize(s string) string {
	if s == "" {
		return "Resource"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
