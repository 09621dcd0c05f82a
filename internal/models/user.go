package models

import "time"

// RoleAdmin is the only role the service knows about. The role still
// travels in tokens and rows so additional roles can be introduced
// without a schema change.
const RoleAdmin = "admin"

// UserDB represents a user record in the database
type UserDB struct {
	Username     string    `json:"username" db:"username"`     // Unique username, primary key
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	Role         string    `json:"role" db:"role"`             // User role
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
