package models

import "time"

// CategoryDB represents a category row in the database. Videos live in
// their own table and are joined in by the read repository.
type CategoryDB struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// Category is the aggregate returned by the API: a category together
// with its owned, id-ordered video sequence. Videos are only reachable
// through their parent category.
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Videos      []Video `json:"videos"`
}
