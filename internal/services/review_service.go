package services

import (
	"context"
	"strconv"
	"strings"

	"anime-backend/internal/models"
	"anime-backend/internal/repository"
	"anime-backend/internal/utils"

	"github.com/sirupsen/logrus"
)

// ReviewInput carries the raw form fields of a review submission.
// Rating stays a string until validation so an unparseable value can be
// reported as its own failure.
type ReviewInput struct {
	Nickname string
	Password string
	Content  string
	Rating   string
	Spoiler  bool
}

type ReviewService interface {
	// CreateReview validates each precondition in order and aborts on
	// the first failure without touching the store. The parent anime
	// must exist.
	CreateReview(ctx context.Context, animeID uint, input *ReviewInput) (*models.Review, error)
	// DeleteReview removes the review only when the submitted password
	// matches the stored hash. Removal is hard and immediate.
	DeleteReview(ctx context.Context, id uint, password string) error
	// LikeReview increments the like counter by one and returns the
	// new count.
	LikeReview(ctx context.Context, id uint) (int, error)
}

type reviewService struct {
	repo      repository.ReviewRepository
	animeRepo repository.AnimeRepository
	logger    *logrus.Logger
}

func NewReviewService(repo repository.ReviewRepository, animeRepo repository.AnimeRepository, logger *logrus.Logger) ReviewService {
	return &reviewService{
		repo:      repo,
		animeRepo: animeRepo,
		logger:    logger,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, animeID uint, input *ReviewInput) (*models.Review, error) {
	nickname := strings.TrimSpace(input.Nickname)
	password := strings.TrimSpace(input.Password)
	content := strings.TrimSpace(input.Content)

	if nickname == "" {
		return nil, &ValidationError{Field: "nickname", Message: "nickname is required"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password", Message: "password is required (it is used to delete your review)"}
	}
	if content == "" {
		return nil, &ValidationError{Field: "content", Message: "review content is required"}
	}
	if len([]rune(content)) > models.MaxContentLength {
		return nil, &ValidationError{Field: "content", Message: "review must be 500 characters or fewer"}
	}

	rating, err := strconv.Atoi(strings.TrimSpace(input.Rating))
	if err != nil {
		return nil, &ValidationError{Field: "rating", Message: "rating is not a valid number"}
	}
	if rating < models.MinRating || rating > models.MaxRating {
		return nil, &ValidationError{Field: "rating", Message: "rating must be between 1 and 10"}
	}

	exists, err := s.animeRepo.Exists(ctx, animeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, repository.ErrNotFound
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		AnimeID:      animeID,
		Nickname:     nickname,
		PasswordHash: hash,
		Rating:       rating,
		Content:      content,
		Spoiler:      input.Spoiler,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"id":       review.ID,
		"anime_id": animeID,
		"rating":   rating,
	}).Info("Review created")

	return review, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id uint, password string) error {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	password = strings.TrimSpace(password)
	if password == "" {
		return &AuthorizationError{Message: "a password is required to delete a review"}
	}
	if !utils.VerifyPassword(review.PasswordHash, password) {
		return &AuthorizationError{Message: "password does not match"}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithField("id", id).Info("Review deleted")
	return nil
}

func (s *reviewService) LikeReview(ctx context.Context, id uint) (int, error) {
	return s.repo.IncrementLikes(ctx, id)
}
