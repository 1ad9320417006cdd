package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/rmohit9/Healthcare-Portal/internal/delivery/dto"
	"github.com/rmohit9/Healthcare-Portal/internal/delivery/http/middleware"
	"github.com/rmohit9/Healthcare-Portal/internal/usecase"
	"github.com/rmohit9/Healthcare-Portal/pkg/pagination"
	"github.com/rmohit9/Healthcare-Portal/pkg/response"
	"github.com/rmohit9/Healthcare-Portal/pkg/validator"

	"github.com/gorilla/mux"
)

type BlogHandler struct {
	postUsecase  usecase.BlogPostUsecase
	queryUsecase usecase.BlogQueryUsecase
	validator    *validator.CustomValidator
}

func NewBlogHandler(postUsecase usecase.BlogPostUsecase, queryUsecase usecase.BlogQueryUsecase, validator *validator.CustomValidator) *BlogHandler {
	return &BlogHandler{
		postUsecase:  postUsecase,
		queryUsecase: queryUsecase,
		validator:    validator,
	}
}

// BlogHome redirects doctors to their own posts and patients to the browse page.
func (h *BlogHandler) BlogHome(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	location, err := h.queryUsecase.ResolveBlogHome(r.Context(), userID)
	if err != nil {
		writeError(w, err, "Failed to resolve blog home")
		return
	}

	response.Redirect(w, location)
}

func (h *BlogHandler) MyPosts(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	page := pagination.ParseNumber(r.URL.Query().Get("page"))

	res, err := h.queryUsecase.DoctorPostList(r.Context(), userID, page)
	if err != nil {
		writeError(w, err, "Failed to get posts")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Posts retrieved successfully", res, res.Page.Meta())
}

// Browse handles GET /blog/browse?category=<id>&search=<text>&page=<n>
func (h *BlogHandler) Browse(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	query := r.URL.Query()

	req := dto.BrowsePostsRequest{
		Search: query.Get("search"),
		Page:   pagination.ParseNumber(query.Get("page")),
	}
	// A category that is not a number is ignored, like an unknown id.
	if categoryID, err := strconv.Atoi(strings.TrimSpace(query.Get("category"))); err == nil {
		req.CategoryID = &categoryID
	}

	res, err := h.queryUsecase.PatientBrowse(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err, "Failed to browse posts")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Posts retrieved successfully", res, res.Page.Meta())
}

func (h *BlogHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req dto.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	post, err := h.postUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err, "Failed to create post")
		return
	}

	response.Success(w, http.StatusCreated, "Post created successfully", post)
}

func (h *BlogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	res, err := h.queryUsecase.PostDetail(r.Context(), userID, mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, err, "Failed to get post")
		return
	}

	response.Success(w, http.StatusOK, "Post retrieved successfully", res)
}

func (h *BlogHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req dto.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	post, err := h.postUsecase.Edit(r.Context(), userID, mux.Vars(r)["slug"], &req)
	if err != nil {
		writeError(w, err, "Failed to update post")
		return
	}

	response.Success(w, http.StatusOK, "Post updated successfully", post)
}

func (h *BlogHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	if err := h.postUsecase.Delete(r.Context(), userID, mux.Vars(r)["slug"]); err != nil {
		writeError(w, err, "Failed to delete post")
		return
	}

	response.Success(w, http.StatusOK, "Post deleted successfully", nil)
}

// CategoryPosts lists the published posts of one category.
func (h *BlogHandler) CategoryPosts(w http.ResponseWriter, r *http.Request) {
	page := pagination.ParseNumber(r.URL.Query().Get("page"))

	res, err := h.queryUsecase.CategoryBrowse(r.Context(), mux.Vars(r)["slug"], page)
	if err != nil {
		writeError(w, err, "Failed to get category posts")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Posts retrieved successfully", res, res.Page.Meta())
}
