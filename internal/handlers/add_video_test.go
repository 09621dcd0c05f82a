package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmkaawya/kedu-api/internal/models"
	"github.com/dmkaawya/kedu-api/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestAddVideoHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockVideoAdder(ctrl)

	const watchURL = "https://www.youtube.com/watch?v=NybHckSEQBI"

	updated := &models.Category{
		ID:          1,
		Name:        "Mathematics",
		Description: "Learn mathematical concepts from basic to advanced levels",
		Videos: []models.Video{
			{ID: 1, Title: "Introduction to Algebra", URL: "https://www.youtube.com/embed/NybHckSEQBI", Description: "Learn the basics of algebra"},
		},
	}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success returns updated parent",
			inputBody: AddVideoRequest{
				CategoryID:  1,
				Title:       "Introduction to Algebra",
				URL:         watchURL,
				Description: "Learn the basics of algebra",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					AddVideo(gomock.Any(), int64(1), "Introduction to Algebra", watchURL, "Learn the basics of algebra").
					Return(updated, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: updated,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Message: "Invalid request body",
			},
		},
		{
			name: "missing fields",
			inputBody: AddVideoRequest{
				CategoryID: 1,
				Title:      "Introduction to Algebra",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					AddVideo(gomock.Any(), int64(1), "Introduction to Algebra", "", "").
					Return(nil, services.ErrMissingFields)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Message: "Category id, title, url and description are required",
			},
		},
		{
			name: "invalid url",
			inputBody: AddVideoRequest{
				CategoryID:  1,
				Title:       "Introduction to Algebra",
				URL:         "https://example.com",
				Description: "Learn the basics of algebra",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					AddVideo(gomock.Any(), int64(1), "Introduction to Algebra", "https://example.com", "Learn the basics of algebra").
					Return(nil, services.ErrInvalidVideoURL)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Message: "Invalid YouTube URL",
			},
		},
		{
			name: "unknown category",
			inputBody: AddVideoRequest{
				CategoryID:  42,
				Title:       "Introduction to Algebra",
				URL:         watchURL,
				Description: "Learn the basics of algebra",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					AddVideo(gomock.Any(), int64(42), "Introduction to Algebra", watchURL, "Learn the basics of algebra").
					Return(nil, services.ErrCategoryNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &ErrorResponse{
				Message: "Category not found",
			},
		},
		{
			name: "internal error",
			inputBody: AddVideoRequest{
				CategoryID:  1,
				Title:       "Introduction to Algebra",
				URL:         watchURL,
				Description: "Learn the basics of algebra",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					AddVideo(gomock.Any(), int64(1), "Introduction to Algebra", watchURL, "Learn the basics of algebra").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{
				Message: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/videos", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			NewAddVideoHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusCreated:
				respBody = &models.Category{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
