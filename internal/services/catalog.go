package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/dmkaawya/kedu-api/internal/logger"
	"github.com/dmkaawya/kedu-api/internal/models"
	"github.com/dmkaawya/kedu-api/internal/youtube"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrMissingFields is returned when a required field is empty or absent.
	ErrMissingFields = errors.New("missing required fields")
	// ErrCategoryNotFound is returned for an unknown category id.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrInvalidVideoURL is returned when no video id can be extracted
	// from the supplied URL.
	ErrInvalidVideoURL = errors.New("unrecognized video url")
)

// CategoryReader defines read operations on the category aggregate.
type CategoryReader interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
}

// CategoryWriter creates categories with store-assigned ids.
type CategoryWriter interface {
	Save(ctx context.Context, name, description string) (*models.Category, error)
}

// VideoWriter appends videos to a category with store-assigned ids.
type VideoWriter interface {
	Save(ctx context.Context, categoryID int64, title, url, description string) (int64, error)
}

// CategoryCache caches the full category list.
type CategoryCache interface {
	Get(ctx context.Context) ([]models.Category, error)
	Set(ctx context.Context, categories []models.Category) error
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CatalogService manages the category/video aggregate and publishes
// catalog-change events.
type CatalogService struct {
	reader      CategoryReader
	writer      CategoryWriter
	videoWriter VideoWriter
	cache       CategoryCache
	kafkaWriter KafkaWriter
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	reader CategoryReader,
	writer CategoryWriter,
	videoWriter VideoWriter,
	cache CategoryCache,
	kafkaWriter KafkaWriter,
) *CatalogService {
	return &CatalogService{
		reader:      reader,
		writer:      writer,
		videoWriter: videoWriter,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a catalog-change event to Kafka.
func (s *CatalogService) publishEvent(ctx context.Context, event models.CatalogEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", event.Type)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal catalog event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.CategoryID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish catalog event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("catalog event published", "event_id", event.EventID, "type", event.Type)
	}
}

// ListCategories returns the full category aggregate, serving from the
// cache when possible and falling back to the store.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.cache.Get(ctx)
	if err == nil {
		return categories, nil
	}

	categories, err = s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list categories", "error", err)
		return nil, err
	}

	if err := s.cache.Set(ctx, categories); err != nil {
		logger.Log.Errorw("failed to cache categories", "error", err)
	}

	return categories, nil
}

// AddCategory validates and creates a category with the next global id.
func (s *CatalogService) AddCategory(ctx context.Context, name, description string) (*models.Category, error) {
	if name == "" || description == "" {
		return nil, ErrMissingFields
	}

	category, err := s.writer.Save(ctx, name, description)
	if err != nil {
		logger.Log.Errorw("failed to save category", "name", name, "error", err)
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate category cache", "error", err)
	}

	s.publishEvent(ctx, models.CatalogEvent{
		EventID:    uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		Type:       models.EventCategoryCreated,
		CategoryID: category.ID,
	})

	return category, nil
}

// AddVideo validates, canonicalizes the URL, appends the video to its
// category, and returns the full updated parent aggregate.
func (s *CatalogService) AddVideo(ctx context.Context, categoryID int64, title, url, description string) (*models.Category, error) {
	if categoryID == 0 || title == "" || url == "" || description == "" {
		return nil, ErrMissingFields
	}

	embedURL, err := youtube.Canonicalize(url)
	if err != nil {
		logger.Log.Infow("rejected video url", "url", url)
		return nil, ErrInvalidVideoURL
	}

	category, err := s.reader.GetByID(ctx, categoryID)
	if err != nil {
		logger.Log.Errorw("failed to get category", "category_id", categoryID, "error", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	videoID, err := s.videoWriter.Save(ctx, categoryID, title, embedURL, description)
	if err != nil {
		logger.Log.Errorw("failed to save video", "category_id", categoryID, "title", title, "error", err)
		return nil, err
	}

	updated, err := s.reader.GetByID(ctx, categoryID)
	if err != nil {
		logger.Log.Errorw("failed to reload category", "category_id", categoryID, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrCategoryNotFound
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate category cache", "error", err)
	}

	s.publishEvent(ctx, models.CatalogEvent{
		EventID:    uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		Type:       models.EventVideoAdded,
		CategoryID: categoryID,
		VideoID:    videoID,
	})

	return updated, nil
}
