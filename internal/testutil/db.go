// Package testutil provides a throwaway database and fixtures for tests.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/inkwell-app/inkwell/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB opens an isolated sqlite database migrated with the full schema.
// Each test gets its own file under t.TempDir, cleaned up automatically.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inkwell_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// sqlite allows a single writer. One pooled connection serializes
	// concurrent test traffic instead of surfacing SQLITE_BUSY.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Blog{},
		&models.Comment{},
		&models.Follow{},
		&models.BlogLike{},
		&models.CommentLike{},
	))
	return db
}

// CreateUser inserts a user with fixture data derived from the username.
func CreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    username,
		LastName:     "Test",
		PasswordHash: "x",
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateBlog inserts a blog with an explicit creation time so feed-ordering
// tests can control the timeline.
func CreateBlog(t *testing.T, db *gorm.DB, userID uint, public, featured bool, createdAt time.Time) *models.Blog {
	t.Helper()
	blog := &models.Blog{
		Title:      "title",
		Content:    "content",
		IsPublic:   public,
		IsFeatured: featured,
		UserID:     userID,
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(blog).Error)
	return blog
}

// CreateComment inserts a comment.
func CreateComment(t *testing.T, db *gorm.DB, userID, blogID uint) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		Content: "a comment",
		UserID:  userID,
		BlogID:  blogID,
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}
