package services

import (
	"context"
	"io"
	"strconv"
	"time"

	"anime-backend/internal/config"
	"anime-backend/internal/database"
	"anime-backend/internal/models"
	"anime-backend/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ServiceTestSuite runs the service layer against a fresh in-memory
// SQLite store per test, no network stack involved.
type ServiceTestSuite struct {
	suite.Suite
	db            *database.Database
	animeService  AnimeService
	reviewService ReviewService
}

func (s *ServiceTestSuite) SetupTest() {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)

	sqlDB, err := gdb.DB()
	s.Require().NoError(err)
	// One connection so the pool cannot split the in-memory database.
	sqlDB.SetMaxOpenConns(1)

	s.Require().NoError(gdb.AutoMigrate(&models.Anime{}, &models.Review{}))

	s.db = database.New(gdb, config.DatabaseConfig{QueryTimeout: 5 * time.Second})

	log := logrus.New()
	log.SetOutput(io.Discard)

	animeRepo := repository.NewAnimeRepository(s.db)
	reviewRepo := repository.NewReviewRepository(s.db)
	s.animeService = NewAnimeService(animeRepo, log)
	s.reviewService = NewReviewService(reviewRepo, animeRepo, log)
}

func (s *ServiceTestSuite) createAnime(title, genre string) *models.Anime {
	anime, err := s.animeService.CreateAnime(context.Background(), &AnimeInput{
		Title: title,
		Genre: genre,
	})
	s.Require().NoError(err)
	return anime
}

func (s *ServiceTestSuite) createReview(animeID uint, rating int) *models.Review {
	review, err := s.reviewService.CreateReview(context.Background(), animeID, &ReviewInput{
		Nickname: "tester",
		Password: "hunter2",
		Content:  "solid",
		Rating:   strconv.Itoa(rating),
	})
	s.Require().NoError(err)
	return review
}
