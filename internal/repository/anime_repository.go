package repository

import (
	"context"
	"errors"
	"time"

	"anime-backend/internal/database"
	"anime-backend/internal/models"

	"gorm.io/gorm"
)

// ReviewSortOrder maps a detail-view sort key to its ORDER BY clause.
// Unknown keys fall back to newest-first.
func ReviewSortOrder(sort string) string {
	switch sort {
	case "rating_desc":
		return "rating DESC"
	case "rating_asc":
		return "rating ASC"
	case "likes":
		return "like_count DESC"
	default: // newest
		return "created_at DESC"
	}
}

type AnimeRepository interface {
	Create(ctx context.Context, anime *models.Anime) error
	// Delete removes the anime and all of its reviews. The cascade is
	// one logical write, applied in a single transaction.
	Delete(ctx context.Context, id uint) error
	// FindByID loads one anime with its reviews ordered per reviewSort.
	FindByID(ctx context.Context, id uint, reviewSort string) (*models.Anime, error)
	// FindAll loads every anime matching the optional title substring
	// and exact genre filters, reviews preloaded. Sorting and paging
	// happen in the service layer.
	FindAll(ctx context.Context, titleQuery, genre string) ([]models.Anime, error)
	// DistinctGenres lists every genre present in the full unfiltered
	// catalog, sorted ascending.
	DistinctGenres(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type animeRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewAnimeRepository(db *database.Database) AnimeRepository {
	return &animeRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *animeRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *animeRepository) Create(ctx context.Context, anime *models.Anime) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(anime).Error
}

func (r *animeRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Anime{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("anime_id = ?", id).Delete(&models.Review{}).Error
	})
}

func (r *animeRepository) FindByID(ctx context.Context, id uint, reviewSort string) (*models.Anime, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	order := ReviewSortOrder(reviewSort)

	var anime models.Anime
	err := r.db.WithContext(ctx).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order(order)
		}).
		First(&anime, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &anime, nil
}

func (r *animeRepository) FindAll(ctx context.Context, titleQuery, genre string) ([]models.Anime, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Anime{})

	if titleQuery != "" {
		query = query.Where("title LIKE ?", "%"+titleQuery+"%")
	}
	if genre != "" {
		query = query.Where("genre = ?", genre)
	}

	var anime []models.Anime
	if err := query.Preload("Reviews").Find(&anime).Error; err != nil {
		return nil, err
	}
	return anime, nil
}

func (r *animeRepository) DistinctGenres(ctx context.Context) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genres []string
	err := r.db.WithContext(ctx).Model(&models.Anime{}).
		Distinct().
		Order("genre ASC").
		Pluck("genre", &genres).Error
	if err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *animeRepository) Exists(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Anime{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
