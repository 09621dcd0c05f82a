package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmkaawya/kedu-api/internal/logger"
	"github.com/dmkaawya/kedu-api/internal/models"
	"github.com/dmkaawya/kedu-api/internal/services"
)

// VideoAdder defines the interface that the catalog service must implement.
type VideoAdder interface {
	AddVideo(ctx context.Context, categoryID int64, title, url, description string) (*models.Category, error)
}

// AddVideoRequest represents the JSON body for adding a video
// swagger:model AddVideoRequest
type AddVideoRequest struct {
	// Owning category id
	// required: true
	// default: 1
	CategoryID int64 `json:"categoryId"`

	// Video title
	// required: true
	// default: Introduction to Algebra
	Title string `json:"title"`

	// YouTube watch or youtu.be URL
	// required: true
	// default: https://www.youtube.com/watch?v=NybHckSEQBI
	URL string `json:"url"`

	// Video description
	// required: true
	// default: Learn the basics of algebra
	Description string `json:"description"`
}

// NewAddVideoHandler returns an HTTP handler for appending a video to
// a category. The response is the full parent category including the
// new video.
// @Summary Add video
// @Description Canonicalizes the YouTube URL and appends the video to its category
// @Tags catalog
// @Accept json
// @Produce json
// @Param addVideoRequest body handlers.AddVideoRequest true "Video to add"
// @Success 201 {object} models.Category "Updated parent category"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields or unrecognized URL"
// @Failure 401 {object} handlers.ErrorResponse "Missing token"
// @Failure 403 {object} handlers.ErrorResponse "Invalid or expired token"
// @Failure 404 {object} handlers.ErrorResponse "Unknown category id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/videos [post]
// @Security BearerAuth
func NewAddVideoHandler(svc VideoAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req AddVideoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Invalid request body",
			})
			return
		}

		category, err := svc.AddVideo(r.Context(), req.CategoryID, req.Title, req.URL, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Category id, title, url and description are required",
				})
			case errors.Is(err, services.ErrInvalidVideoURL):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Invalid YouTube URL",
				})
			case errors.Is(err, services.ErrCategoryNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Category not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(category)
	}
}
