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

// CategoryAdder defines the interface that the catalog service must implement.
type CategoryAdder interface {
	AddCategory(ctx context.Context, name, description string) (*models.Category, error)
}

// AddCategoryRequest represents the JSON body for creating a category
// swagger:model AddCategoryRequest
type AddCategoryRequest struct {
	// Category name
	// required: true
	// default: Mathematics
	Name string `json:"name"`

	// Category description
	// required: true
	// default: Learn mathematical concepts
	Description string `json:"description"`
}

// NewAddCategoryHandler returns an HTTP handler for creating a category.
// @Summary Add category
// @Description Creates a category with the next sequential id
// @Tags catalog
// @Accept json
// @Produce json
// @Param addCategoryRequest body handlers.AddCategoryRequest true "Category to create"
// @Success 201 {object} models.Category "Created category"
// @Failure 400 {object} handlers.ErrorResponse "Missing name or description"
// @Failure 401 {object} handlers.ErrorResponse "Missing token"
// @Failure 403 {object} handlers.ErrorResponse "Invalid or expired token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/categories [post]
// @Security BearerAuth
func NewAddCategoryHandler(svc CategoryAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req AddCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Invalid request body",
			})
			return
		}

		category, err := svc.AddCategory(r.Context(), req.Name, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Name and description are required",
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
