package services

import (
	"context"
	"sort"
	"strings"

	"anime-backend/internal/models"
	"anime-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// CatalogPageSize bounds how many anime one catalog page returns.
const CatalogPageSize = 6

// AnimeInput is the admin-ingestion payload. Title and Genre are
// required; everything else is optional.
type AnimeInput struct {
	Title       string
	Genre       string
	Year        *int
	Episodes    *int
	Description string
	ImagePath   string
}

// CatalogPage is one page of the browsed catalog plus the context
// needed to build filter and pager UI.
type CatalogPage struct {
	Anime      []models.Anime
	Genres     []string
	Page       int
	TotalPages int
	Total      int64
}

type AnimeService interface {
	// BrowseCatalog filters, sorts and paginates the catalog. The
	// requested page is clamped into [1, TotalPages].
	BrowseCatalog(ctx context.Context, titleQuery, genre, sortKey string, page int) (*CatalogPage, error)
	GetAnimeByID(ctx context.Context, id uint, reviewSort string) (*models.Anime, error)
	CreateAnime(ctx context.Context, input *AnimeInput) (*models.Anime, error)
	DeleteAnime(ctx context.Context, id uint) error
}

type animeService struct {
	repo         repository.AnimeRepository
	logger       *logrus.Logger
	minioService *MinIOService
}

func NewAnimeService(repo repository.AnimeRepository, logger *logrus.Logger) AnimeService {
	return &animeService{
		repo:   repo,
		logger: logger,
	}
}

// SetMinIOService enables cleanup of uploaded cover objects when their
// anime is deleted.
func (s *animeService) SetMinIOService(minioSvc *MinIOService) {
	s.minioService = minioSvc
}

func (s *animeService) BrowseCatalog(ctx context.Context, titleQuery, genre, sortKey string, page int) (*CatalogPage, error) {
	matches, err := s.repo.FindAll(ctx, titleQuery, genre)
	if err != nil {
		return nil, err
	}

	genres, err := s.repo.DistinctGenres(ctx)
	if err != nil {
		return nil, err
	}

	sortCatalog(matches, sortKey)

	total := len(matches)
	totalPages := (total + CatalogPageSize - 1) / CatalogPageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * CatalogPageSize
	end := start + CatalogPageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &CatalogPage{
		Anime:      matches[start:end],
		Genres:     genres,
		Page:       page,
		TotalPages: totalPages,
		Total:      int64(total),
	}, nil
}

// sortCatalog orders the full result set in memory. Rating sorts rank a
// review-less anime as 0, so unrated titles land last when descending.
func sortCatalog(anime []models.Anime, sortKey string) {
	switch sortKey {
	case "title_desc":
		sort.SliceStable(anime, func(i, j int) bool {
			return anime[i].Title > anime[j].Title
		})
	case "rating_desc":
		sort.SliceStable(anime, func(i, j int) bool {
			return anime[i].RatingOrZero() > anime[j].RatingOrZero()
		})
	case "rating_asc":
		sort.SliceStable(anime, func(i, j int) bool {
			return anime[i].RatingOrZero() < anime[j].RatingOrZero()
		})
	default: // title ascending
		sort.SliceStable(anime, func(i, j int) bool {
			return anime[i].Title < anime[j].Title
		})
	}
}

func (s *animeService) GetAnimeByID(ctx context.Context, id uint, reviewSort string) (*models.Anime, error) {
	return s.repo.FindByID(ctx, id, reviewSort)
}

func (s *animeService) CreateAnime(ctx context.Context, input *AnimeInput) (*models.Anime, error) {
	title := strings.TrimSpace(input.Title)
	genre := strings.TrimSpace(input.Genre)

	if title == "" {
		return nil, &ValidationError{Field: "title", Message: "title is required"}
	}
	if genre == "" {
		return nil, &ValidationError{Field: "genre", Message: "genre is required"}
	}

	imagePath := strings.TrimSpace(input.ImagePath)
	if imagePath == "" {
		imagePath = models.DefaultImagePath
	}

	anime := &models.Anime{
		Title:       title,
		Genre:       genre,
		Year:        input.Year,
		Episodes:    input.Episodes,
		Description: strings.TrimSpace(input.Description),
		ImagePath:   imagePath,
	}

	if err := s.repo.Create(ctx, anime); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"id":    anime.ID,
		"title": anime.Title,
	}).Info("Anime created")

	return anime, nil
}

func (s *animeService) DeleteAnime(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id, "")
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Remove an uploaded cover object; seeded relative paths are left
	// alone.
	if s.minioService != nil && strings.Contains(existing.ImagePath, "http") {
		if err := s.minioService.DeleteCover(existing.ImagePath); err != nil {
			s.logger.WithError(err).Warn("Failed to delete cover from object storage")
		}
	}

	s.logger.WithField("id", id).Info("Anime deleted with its reviews")
	return nil
}
