package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmkaawya/kedu-api/internal/logger"
	"github.com/dmkaawya/kedu-api/internal/models"
)

// CategoryLister defines the interface that the catalog service must implement.
type CategoryLister interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// NewListCategoriesHandler returns an HTTP handler for the public
// category listing, including each category's videos.
// @Summary List categories
// @Description Returns all categories with their videos, ordered by id
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Category "Category list"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/categories [get]
func NewListCategoriesHandler(svc CategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list categories", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(categories)
	}
}
