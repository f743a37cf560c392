package repository

import (
	"testing"
	"time"

	"anime-backend/internal/config"
	"anime-backend/internal/database"
	"anime-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory SQLite store. A single connection
// keeps the pool from splitting the in-memory database.
func newTestDB(t *testing.T) *database.Database {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&models.Anime{}, &models.Review{}))

	return database.New(gdb, config.DatabaseConfig{QueryTimeout: 5 * time.Second})
}

func createAnime(t *testing.T, db *database.Database, title, genre string) *models.Anime {
	t.Helper()

	anime := &models.Anime{Title: title, Genre: genre, ImagePath: models.DefaultImagePath}
	require.NoError(t, db.Create(anime).Error)
	return anime
}

func createReview(t *testing.T, db *database.Database, animeID uint, rating, likes int, createdAt time.Time) *models.Review {
	t.Helper()

	review := &models.Review{
		AnimeID:      animeID,
		Nickname:     "tester",
		PasswordHash: "x",
		Rating:       rating,
		Content:      "fine",
		LikeCount:    likes,
		CreatedAt:    createdAt,
	}
	require.NoError(t, db.Create(review).Error)
	return review
}
