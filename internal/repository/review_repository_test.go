package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_FindByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)

	_, err := repo.FindByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)

	anime := createAnime(t, db, "Haikyuu!!", "Sports")
	review := createReview(t, db, anime.ID, 8, 0, time.Now().UTC())

	require.NoError(t, repo.Delete(context.Background(), review.ID))

	_, err := repo.FindByID(context.Background(), review.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), review.ID), ErrNotFound)
}

func TestReviewRepository_IncrementLikes(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)

	anime := createAnime(t, db, "Haikyuu!!", "Sports")
	review := createReview(t, db, anime.ID, 8, 0, time.Now().UTC())

	for i := 1; i <= 5; i++ {
		likes, err := repo.IncrementLikes(context.Background(), review.ID)
		require.NoError(t, err)
		assert.Equal(t, i, likes)
	}

	stored, err := repo.FindByID(context.Background(), review.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.LikeCount)
}

func TestReviewRepository_IncrementLikes_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)

	_, err := repo.IncrementLikes(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
