// Package storage creates the schema and loads the first-boot seed
// fixtures: the admin accounts and a small starter catalog.
package storage

import (
	"context"

	"github.com/dmkaawya/kedu-api/internal/logger"
	"github.com/dmkaawya/kedu-api/internal/models"
	"github.com/dmkaawya/kedu-api/internal/repositories"
	"github.com/dmkaawya/kedu-api/internal/youtube"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

const schema = `
	CREATE TABLE IF NOT EXISTS users (
		username VARCHAR(50) PRIMARY KEY,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'admin',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS categories (
		id BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS videos (
		category_id BIGINT NOT NULL REFERENCES categories (id),
		id BIGINT NOT NULL,
		title TEXT NOT NULL,
		url TEXT NOT NULL,
		description TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		PRIMARY KEY (category_id, id)
	);
`

type seedUser struct {
	username string
	password string
}

type seedVideo struct {
	title       string
	url         string
	description string
}

type seedCategory struct {
	name        string
	description string
	videos      []seedVideo
}

var seedUsers = []seedUser{
	{username: "admin", password: "admin123"},
	{username: "teacher", password: "teach2025"},
}

var seedCategories = []seedCategory{
	{
		name:        "Mathematics",
		description: "Learn mathematical concepts from basic to advanced levels",
		videos: []seedVideo{
			{"Introduction to Algebra", "https://www.youtube.com/watch?v=NybHckSEQBI", "Learn the basics of algebra"},
			{"Solving Linear Equations", "https://www.youtube.com/watch?v=9DqtN7Q4648", "Step by step equation solving"},
			{"Quadratic Equations", "https://www.youtube.com/watch?v=i7idZfS8t8w", "Understanding quadratic formulas"},
		},
	},
	{
		name:        "Science",
		description: "Explore physics, chemistry, and biology",
		videos: []seedVideo{
			{"Physics Introduction", "https://www.youtube.com/watch?v=ZM8ECpBuQYE", "What is physics?"},
			{"Motion and Forces", "https://www.youtube.com/watch?v=5-LjIrJGcEg", "Understanding motion and forces"},
		},
	},
	{
		name:        "Technology",
		description: "Learn about computers and modern technology",
		videos: []seedVideo{
			{"HTML Basics", "https://www.youtube.com/watch?v=UB1O30fR-EE", "Learn HTML fundamentals"},
			{"CSS Styling", "https://www.youtube.com/watch?v=yfoY53QXEnI", "Style your web pages"},
			{"JavaScript Basics", "https://www.youtube.com/watch?v=PkZNo7MFNFg", "Programming for the web"},
		},
	},
}

// Bootstrap creates the tables and, when the users table is empty,
// inserts the seed accounts and starter catalog. Subsequent boots are
// no-ops beyond the idempotent DDL.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		logger.Log.Errorw("failed to create schema", "error", err)
		return err
	}

	var userCount int
	if err := db.GetContext(ctx, &userCount, `SELECT COUNT(*) FROM users`); err != nil {
		logger.Log.Errorw("failed to count users", "error", err)
		return err
	}
	if userCount > 0 {
		logger.Log.Infow("seed skipped, users already present", "count", userCount)
		return nil
	}

	userRepo := repositories.NewUserWriteRepository(db)
	categoryRepo := repositories.NewCategoryWriteRepository(db)
	videoRepo := repositories.NewVideoWriteRepository(db)

	for _, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := userRepo.Save(ctx, u.username, string(hash), models.RoleAdmin); err != nil {
			return err
		}
	}

	for _, c := range seedCategories {
		category, err := categoryRepo.Save(ctx, c.name, c.description)
		if err != nil {
			return err
		}
		for _, v := range c.videos {
			embedURL, err := youtube.Canonicalize(v.url)
			if err != nil {
				return err
			}
			if _, err := videoRepo.Save(ctx, category.ID, v.title, embedURL, v.description); err != nil {
				return err
			}
		}
	}

	logger.Log.Infow("seed data loaded",
		"users", len(seedUsers),
		"categories", len(seedCategories),
	)
	return nil
}
