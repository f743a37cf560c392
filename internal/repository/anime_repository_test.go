package repository

import (
	"context"
	"testing"
	"time"

	"anime-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimeRepository_FindByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnimeRepository(db)

	_, err := repo.FindByID(context.Background(), 42, "newest")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnimeRepository_FindByID_ReviewOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnimeRepository(db)

	anime := createAnime(t, db, "Haikyuu!!", "Sports")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	oldest := createReview(t, db, anime.ID, 9, 5, base)
	middle := createReview(t, db, anime.ID, 3, 20, base.Add(time.Hour))
	newest := createReview(t, db, anime.ID, 6, 1, base.Add(2*time.Hour))

	cases := []struct {
		sort string
		want []uint
	}{
		{"newest", []uint{newest.ID, middle.ID, oldest.ID}},
		{"rating_desc", []uint{oldest.ID, newest.ID, middle.ID}},
		{"rating_asc", []uint{middle.ID, newest.ID, oldest.ID}},
		{"likes", []uint{middle.ID, oldest.ID, newest.ID}},
		{"bogus", []uint{newest.ID, middle.ID, oldest.ID}},
	}

	for _, tc := range cases {
		t.Run(tc.sort, func(t *testing.T) {
			found, err := repo.FindByID(context.Background(), anime.ID, tc.sort)
			require.NoError(t, err)
			require.Len(t, found.Reviews, 3)

			got := make([]uint, 0, len(found.Reviews))
			for _, r := range found.Reviews {
				got = append(got, r.ID)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAnimeRepository_FindAll_Filters(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnimeRepository(db)

	createAnime(t, db, "Haikyuu!!", "Sports")
	createAnime(t, db, "Blue Lock", "Sports")
	createAnime(t, db, "Attack on Titan", "Dark Fantasy")

	all, err := repo.FindAll(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byTitle, err := repo.FindAll(context.Background(), "Lock", "")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "Blue Lock", byTitle[0].Title)

	byGenre, err := repo.FindAll(context.Background(), "", "Sports")
	require.NoError(t, err)
	assert.Len(t, byGenre, 2)

	both, err := repo.FindAll(context.Background(), "Haikyuu", "Sports")
	require.NoError(t, err)
	assert.Len(t, both, 1)

	none, err := repo.FindAll(context.Background(), "Haikyuu", "Dark Fantasy")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAnimeRepository_DistinctGenres(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnimeRepository(db)

	createAnime(t, db, "Haikyuu!!", "Sports")
	createAnime(t, db, "Blue Lock", "Sports")
	createAnime(t, db, "Attack on Titan", "Dark Fantasy")
	createAnime(t, db, "Jujutsu Kaisen", "Fantasy")

	genres, err := repo.DistinctGenres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Dark Fantasy", "Fantasy", "Sports"}, genres)
}

func TestAnimeRepository_Delete_CascadesReviews(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnimeRepository(db)

	anime := createAnime(t, db, "Haikyuu!!", "Sports")
	other := createAnime(t, db, "Blue Lock", "Sports")
	now := time.Now().UTC()
	createReview(t, db, anime.ID, 8, 0, now)
	createReview(t, db, anime.ID, 6, 0, now)
	kept := createReview(t, db, other.ID, 7, 0, now)

	require.NoError(t, repo.Delete(context.Background(), anime.ID))

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Where("anime_id = ?", anime.ID).Count(&count).Error)
	assert.Zero(t, count, "no orphaned reviews may remain")

	var remaining models.Review
	require.NoError(t, db.First(&remaining, kept.ID).Error, "reviews of other anime stay")

	assert.ErrorIs(t, repo.Delete(context.Background(), anime.ID), ErrNotFound)
}

func TestAnimeRepository_Exists(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnimeRepository(db)

	anime := createAnime(t, db, "Haikyuu!!", "Sports")

	exists, err := repo.Exists(context.Background(), anime.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(context.Background(), anime.ID+1)
	require.NoError(t, err)
	assert.False(t, exists)
}
