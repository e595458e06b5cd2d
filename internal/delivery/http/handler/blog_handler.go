package handler

import (
	"encoding/json"
	"net/http"

	"carelink-backend/internal/delivery/dto"
	"carelink-backend/internal/delivery/http/middleware"
	"carelink-backend/internal/usecase"
	"carelink-backend/pkg/response"
	"carelink-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// 10 MB form memory budget; larger file parts spill to temp files
const maxMultipartMemory = 10 << 20

type BlogHandler struct {
	blogUsecase usecase.BlogUsecase
	validator   *validator.CustomValidator
}

func NewBlogHandler(blogUsecase usecase.BlogUsecase, validator *validator.CustomValidator) *BlogHandler {
	return &BlogHandler{
		blogUsecase: blogUsecase,
		validator:   validator,
	}
}

// CreateBlog accepts a multipart form: text fields plus zero or more
// "images" file parts, stored in the order they arrive.
func (h *BlogHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	req := dto.CreateBlogRequest{
		Title:       r.FormValue("title"),
		Slug:        r.FormValue("slug"),
		Content:     r.FormValue("content"),
		SEOTitle:    r.FormValue("seo_title"),
		SEOKeywords: r.FormValue("seo_keywords"),
		PublishedAt: r.FormValue("published_at"),
	}
	if r.MultipartForm != nil {
		req.Images = r.MultipartForm.File["images"]
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	authorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	blog, err := h.blogUsecase.CreateBlog(r.Context(), authorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrSlugExists:
			response.Conflict(w, "A blog with this slug already exists")
		case usecase.ErrInvalidPublished:
			response.Error(w, http.StatusBadRequest, "Invalid published_at, use RFC3339", nil)
		default:
			response.InternalServerError(w, "Failed to create blog")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Blog created successfully", blog)
}

func (h *BlogHandler) GetAllBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogUsecase.GetAllBlogs(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get blogs")
		return
	}

	response.Success(w, http.StatusOK, "Blogs retrieved successfully", blogs)
}

func (h *BlogHandler) GetBlogBySlug(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	blog, err := h.blogUsecase.GetBlogBySlug(r.Context(), vars["slug"])
	if err != nil {
		switch err {
		case usecase.ErrBlogNotFound:
			response.NotFound(w, "Blog not found")
		default:
			response.InternalServerError(w, "Failed to get blog")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blog retrieved successfully", blog)
}

// UpdateBlog is a partial update: only fields present in the multipart
// form are touched. Sending any "images" parts replaces the whole image set.
func (h *BlogHandler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blogID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid blog ID", nil)
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	req := dto.UpdateBlogRequest{
		Title:       formValue(r, "title"),
		Slug:        formValue(r, "slug"),
		Content:     formValue(r, "content"),
		SEOTitle:    formValue(r, "seo_title"),
		SEOKeywords: formValue(r, "seo_keywords"),
		PublishedAt: formValue(r, "published_at"),
	}
	if r.MultipartForm != nil {
		req.Images = r.MultipartForm.File["images"]
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	blog, err := h.blogUsecase.UpdateBlog(r.Context(), blogID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBlogNotFound:
			response.NotFound(w, "Blog not found")
		case usecase.ErrSlugExists:
			response.Conflict(w, "A blog with this slug already exists")
		case usecase.ErrInvalidPublished:
			response.Error(w, http.StatusBadRequest, "Invalid published_at, use RFC3339", nil)
		default:
			response.InternalServerError(w, "Failed to update blog")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blog updated successfully", blog)
}

func (h *BlogHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blogID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid blog ID", nil)
		return
	}

	result, err := h.blogUsecase.DeleteBlog(r.Context(), blogID)
	if err != nil {
		switch err {
		case usecase.ErrBlogNotFound:
			response.NotFound(w, "Blog not found")
		default:
			response.InternalServerError(w, "Failed to delete blog")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blog deleted successfully", result)
}

func (h *BlogHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blogID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid blog ID", nil)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	result, err := h.blogUsecase.ToggleLike(r.Context(), blogID, userID)
	if err != nil {
		switch err {
		case usecase.ErrBlogNotFound:
			response.NotFound(w, "Blog not found")
		default:
			response.InternalServerError(w, "Failed to toggle like")
		}
		return
	}

	message := "Blog unliked successfully"
	if result.Liked {
		message = "Blog liked successfully"
	}
	response.Success(w, http.StatusOK, message, result)
}

func (h *BlogHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blogID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid blog ID", nil)
		return
	}

	var req dto.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	comment, err := h.blogUsecase.AddComment(r.Context(), blogID, userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBlogNotFound:
			response.NotFound(w, "Blog not found")
		default:
			response.InternalServerError(w, "Failed to add comment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Comment added successfully", comment)
}

func (h *BlogHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blogID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid blog ID", nil)
		return
	}

	comments, err := h.blogUsecase.GetComments(r.Context(), blogID)
	if err != nil {
		switch err {
		case usecase.ErrBlogNotFound:
			response.NotFound(w, "Blog not found")
		default:
			response.InternalServerError(w, "Failed to get comments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Comments retrieved successfully", comments)
}

func (h *BlogHandler) AddShare(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blogID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid blog ID", nil)
		return
	}

	var req dto.CreateShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	share, err := h.blogUsecase.AddShare(r.Context(), blogID, userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBlogNotFound:
			response.NotFound(w, "Blog not found")
		default:
			response.InternalServerError(w, "Failed to record share")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Share recorded successfully", share)
}

// formValue returns nil when the field is absent from the form, so the
// usecase can tell "not sent" apart from "sent empty".
func formValue(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
