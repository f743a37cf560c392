package services

import (
	"context"
	"strings"
	"testing"

	"anime-backend/internal/models"
	"anime-backend/internal/repository"

	"github.com/stretchr/testify/suite"
)

type ReviewServiceTestSuite struct {
	ServiceTestSuite
}

func TestReviewServiceSuite(t *testing.T) {
	suite.Run(t, new(ReviewServiceTestSuite))
}

func validInput() *ReviewInput {
	return &ReviewInput{
		Nickname: "kenma",
		Password: "hunter2",
		Content:  "Best sports anime arc to date.",
		Rating:   "9",
	}
}

func (s *ReviewServiceTestSuite) TestCreateReview_Success() {
	ctx := context.Background()
	anime := s.createAnime("Haikyuu!!", "Sports")

	input := validInput()
	input.Spoiler = true
	review, err := s.reviewService.CreateReview(ctx, anime.ID, input)
	s.Require().NoError(err)

	s.NotZero(review.ID)
	s.Equal(anime.ID, review.AnimeID)
	s.Equal(9, review.Rating)
	s.True(review.Spoiler)
	s.Zero(review.LikeCount)
	s.False(review.CreatedAt.IsZero())
	s.NotEqual("hunter2", review.PasswordHash, "password is never stored in plaintext")
}

func (s *ReviewServiceTestSuite) TestCreateReview_ValidationOrder() {
	ctx := context.Background()
	anime := s.createAnime("Haikyuu!!", "Sports")

	cases := []struct {
		name   string
		mutate func(*ReviewInput)
		field  string
	}{
		{"missing nickname", func(in *ReviewInput) { in.Nickname = "  " }, "nickname"},
		{"missing password", func(in *ReviewInput) { in.Password = "" }, "password"},
		{"missing content", func(in *ReviewInput) { in.Content = "   " }, "content"},
		{"content too long", func(in *ReviewInput) { in.Content = strings.Repeat("a", 501) }, "content"},
		{"unparseable rating", func(in *ReviewInput) { in.Rating = "ten" }, "rating"},
		{"rating too low", func(in *ReviewInput) { in.Rating = "0" }, "rating"},
		{"rating too high", func(in *ReviewInput) { in.Rating = "11" }, "rating"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			input := validInput()
			tc.mutate(input)

			_, err := s.reviewService.CreateReview(ctx, anime.ID, input)
			var vErr *ValidationError
			s.Require().ErrorAs(err, &vErr)
			s.Equal(tc.field, vErr.Field)
		})
	}

	var count int64
	s.Require().NoError(s.db.Model(&models.Review{}).Count(&count).Error)
	s.Zero(count, "no rejected submission may reach the store")
}

func (s *ReviewServiceTestSuite) TestCreateReview_ContentBoundary() {
	ctx := context.Background()
	anime := s.createAnime("Haikyuu!!", "Sports")

	input := validInput()
	input.Content = strings.Repeat("a", 500)
	_, err := s.reviewService.CreateReview(ctx, anime.ID, input)
	s.NoError(err, "exactly 500 characters is accepted")
}

func (s *ReviewServiceTestSuite) TestCreateReview_RatingBounds() {
	ctx := context.Background()
	anime := s.createAnime("Haikyuu!!", "Sports")

	for _, rating := range []string{"1", "10"} {
		input := validInput()
		input.Rating = rating
		_, err := s.reviewService.CreateReview(ctx, anime.ID, input)
		s.NoError(err, "rating %s is within bounds", rating)
	}
}

func (s *ReviewServiceTestSuite) TestCreateReview_MissingAnime() {
	_, err := s.reviewService.CreateReview(context.Background(), 404, validInput())
	s.ErrorIs(err, repository.ErrNotFound)

	var count int64
	s.Require().NoError(s.db.Model(&models.Review{}).Count(&count).Error)
	s.Zero(count)
}

func (s *ReviewServiceTestSuite) TestDeleteReview_PasswordGate() {
	ctx := context.Background()
	anime := s.createAnime("Haikyuu!!", "Sports")
	review := s.createReview(anime.ID, 8)

	var aErr *AuthorizationError

	err := s.reviewService.DeleteReview(ctx, review.ID, "")
	s.Require().ErrorAs(err, &aErr)

	err = s.reviewService.DeleteReview(ctx, review.ID, "wrong")
	s.Require().ErrorAs(err, &aErr)

	var count int64
	s.Require().NoError(s.db.Model(&models.Review{}).Where("id = ?", review.ID).Count(&count).Error)
	s.Equal(int64(1), count, "review survives failed deletion attempts")

	s.Require().NoError(s.reviewService.DeleteReview(ctx, review.ID, "hunter2"))

	s.Require().NoError(s.db.Model(&models.Review{}).Where("id = ?", review.ID).Count(&count).Error)
	s.Zero(count)
}

func (s *ReviewServiceTestSuite) TestDeleteReview_NotFound() {
	err := s.reviewService.DeleteReview(context.Background(), 404, "whatever")
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *ReviewServiceTestSuite) TestLikeReview_Increments() {
	ctx := context.Background()
	anime := s.createAnime("Haikyuu!!", "Sports")
	review := s.createReview(anime.ID, 8)

	for i := 1; i <= 3; i++ {
		likes, err := s.reviewService.LikeReview(ctx, review.ID)
		s.Require().NoError(err)
		s.Equal(i, likes)
	}
}

func (s *ReviewServiceTestSuite) TestLikeReview_NotFound() {
	_, err := s.reviewService.LikeReview(context.Background(), 404)
	s.ErrorIs(err, repository.ErrNotFound)
}
