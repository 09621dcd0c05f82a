package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dmkaawya/kedu-api/internal/models"
	"github.com/dmkaawya/kedu-api/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

type catalogMocks struct {
	reader      *services.MockCategoryReader
	writer      *services.MockCategoryWriter
	videoWriter *services.MockVideoWriter
	cache       *services.MockCategoryCache
	kafkaWriter *services.MockKafkaWriter
}

func newCatalogService(ctrl *gomock.Controller) (*services.CatalogService, catalogMocks) {
	m := catalogMocks{
		reader:      services.NewMockCategoryReader(ctrl),
		writer:      services.NewMockCategoryWriter(ctrl),
		videoWriter: services.NewMockVideoWriter(ctrl),
		cache:       services.NewMockCategoryCache(ctrl),
		kafkaWriter: services.NewMockKafkaWriter(ctrl),
	}
	svc := services.NewCatalogService(m.reader, m.writer, m.videoWriter, m.cache, m.kafkaWriter)
	return svc, m
}

func TestCatalogService_ListCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cached := []models.Category{{ID: 1, Name: "Mathematics", Videos: []models.Video{}}}
	stored := []models.Category{
		{ID: 1, Name: "Mathematics", Videos: []models.Video{}},
		{ID: 2, Name: "Science", Videos: []models.Video{}},
	}

	t.Run("cache hit", func(t *testing.T) {
		svc, m := newCatalogService(ctrl)
		m.cache.EXPECT().Get(gomock.Any()).Return(cached, nil)

		got, err := svc.ListCategories(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, cached, got)
	})

	t.Run("cache miss falls back to store and repopulates", func(t *testing.T) {
		svc, m := newCatalogService(ctrl)
		m.cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("cache miss"))
		m.reader.EXPECT().List(gomock.Any()).Return(stored, nil)
		m.cache.EXPECT().Set(gomock.Any(), stored).Return(nil)

		got, err := svc.ListCategories(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("cache set failure is not surfaced", func(t *testing.T) {
		svc, m := newCatalogService(ctrl)
		m.cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("cache miss"))
		m.reader.EXPECT().List(gomock.Any()).Return(stored, nil)
		m.cache.EXPECT().Set(gomock.Any(), stored).Return(errors.New("redis down"))

		got, err := svc.ListCategories(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("store error", func(t *testing.T) {
		svc, m := newCatalogService(ctrl)
		m.cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("cache miss"))
		m.reader.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		got, err := svc.ListCategories(context.Background())
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestCatalogService_AddCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	created := &models.Category{ID: 4, Name: "Art", Description: "desc", Videos: []models.Video{}}

	t.Run("success", func(t *testing.T) {
		svc, m := newCatalogService(ctrl)
		m.writer.EXPECT().Save(gomock.Any(), "Art", "desc").Return(created, nil)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
		m.kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.AddCategory(context.Background(), "Art", "desc")
		assert.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("missing name", func(t *testing.T) {
		svc, _ := newCatalogService(ctrl)
		got, err := svc.AddCategory(context.Background(), "", "desc")
		assert.ErrorIs(t, err, services.ErrMissingFields)
		assert.Nil(t, got)
	})

	t.Run("missing description", func(t *testing.T) {
		svc, _ := newCatalogService(ctrl)
		got, err := svc.AddCategory(context.Background(), "Art", "")
		assert.ErrorIs(t, err, services.ErrMissingFields)
		assert.Nil(t, got)
	})

	t.Run("store error", func(t *testing.T) {
		svc, m := newCatalogService(ctrl)
		m.writer.EXPECT().Save(gomock.Any(), "Art", "desc").Return(nil, errors.New("db error"))

		got, err := svc.AddCategory(context.Background(), "Art", "desc")
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestCatalogService_AddVideo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const watchURL = "https://www.youtube.com/watch?v=NybHckSEQBI"
	const embedURL = "https://www.youtube.com/embed/NybHckSEQBI"

	parent := &models.Category{ID: 1, Name: "Mathematics", Videos: []models.Video{}}
	updated := &models.Category{
		ID:   1,
		Name: "Mathematics",
		Videos: []models.Video{
			{ID: 1, Title: "Intro", URL: embedURL, Description: "basics"},
		},
	}

	t.Run("success returns full updated parent", func(t *testing.T) {
		svc, m := newCatalogService(ctrl)
		gomock.InOrder(
			m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(parent, nil),
			m.videoWriter.EXPECT().Save(gomock.Any(), int64(1), "Intro", embedURL, "basics").Return(int64(1), nil),
			m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(updated, nil),
		)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
		m.kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.AddVideo(context.Background(), 1, "Intro", watchURL, "basics")
		assert.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _ := newCatalogService(ctrl)
		for _, args := range [][4]interface{}{
			{int64(0), "Intro", watchURL, "basics"},
			{int64(1), "", watchURL, "basics"},
			{int64(1), "Intro", "", "basics"},
			{int64(1), "Intro", watchURL, ""},
		} {
			got, err := svc.AddVideo(context.Background(),
				args[0].(int64), args[1].(string), args[2].(string), args[3].(string))
			assert.ErrorIs(t, err, services.ErrMissingFields)
			assert.Nil(t, got)
		}
	})

	t.Run("invalid url", func(t *testing.T) {
		svc, _ := newCatalogService(ctrl)
		got, err := svc.AddVideo(context.Background(), 1, "Intro", "https://example.com", "basics")
		assert.ErrorIs(t, err, services.ErrInvalidVideoURL)
		assert.Nil(t, got)
	})

	t.Run("category not found leaves store untouched", func(t *testing.T) {
		svc, m := newCatalogService(ctrl)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, nil)

		got, err := svc.AddVideo(context.Background(), 42, "Intro", watchURL, "basics")
		assert.ErrorIs(t, err, services.ErrCategoryNotFound)
		assert.Nil(t, got)
	})

	t.Run("write error", func(t *testing.T) {
		svc, m := newCatalogService(ctrl)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(parent, nil)
		m.videoWriter.EXPECT().Save(gomock.Any(), int64(1), "Intro", embedURL, "basics").
			Return(int64(0), errors.New("db error"))

		got, err := svc.AddVideo(context.Background(), 1, "Intro", watchURL, "basics")
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}
