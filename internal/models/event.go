package models

// Catalog event types published to Kafka.
const (
	EventCategoryCreated = "category_created"
	EventVideoAdded      = "video_added"
)

// CatalogEvent describes a catalog mutation for the event feed.
type CatalogEvent struct {
	EventID    string `json:"event_id"`           // Unique event id
	Timestamp  int64  `json:"timestamp"`          // Unix seconds
	Type       string `json:"type"`               // EventCategoryCreated or EventVideoAdded
	CategoryID int64  `json:"category_id"`        // Affected category
	VideoID    int64  `json:"video_id,omitempty"` // Affected video, zero for category events
}
