package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rmohit9/Healthcare-Portal/internal/delivery/dto"
	"github.com/rmohit9/Healthcare-Portal/internal/delivery/http/middleware"
	"github.com/rmohit9/Healthcare-Portal/internal/usecase"
	"github.com/rmohit9/Healthcare-Portal/pkg/response"
	"github.com/rmohit9/Healthcare-Portal/pkg/validator"

	"github.com/gorilla/mux"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUsecase
	validator       *validator.CustomValidator
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUsecase, validator *validator.CustomValidator) *CategoryHandler {
	return &CategoryHandler{
		categoryUsecase: categoryUsecase,
		validator:       validator,
	}
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryUsecase.ListCategories(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get categories")
		return
	}

	response.Success(w, http.StatusOK, "Categories retrieved successfully", categories)
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.categoryUsecase.GetCategory(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, err, "Failed to get category")
		return
	}

	response.Success(w, http.StatusOK, "Category retrieved successfully", category)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	category, err := h.categoryUsecase.CreateCategory(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err, "Failed to create category")
		return
	}

	response.Success(w, http.StatusCreated, "Category created successfully", category)
}
