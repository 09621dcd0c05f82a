package models

import "time"

// VideoDB represents a video row in the database. The id is only
// unique within the owning category: (category_id, id) is the key.
type VideoDB struct {
	CategoryID  int64     `db:"category_id"`
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	URL         string    `db:"url"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// Video is the API shape of a video inside its category aggregate.
// URL is always the canonical embed form.
type Video struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}
