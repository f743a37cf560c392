package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"anime-backend/internal/repository"
	"anime-backend/internal/services"
	"anime-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AnimeHandler struct {
	service services.AnimeService
	logger  *logrus.Logger
}

func NewAnimeHandler(service services.AnimeService, logger *logrus.Logger) *AnimeHandler {
	return &AnimeHandler{
		service: service,
		logger:  logger,
	}
}

// BrowseCatalog godoc
// @Summary Browse the anime catalog
// @Description List anime with optional title search, genre filter, sorting and pagination (page size 6)
// @Tags anime
// @Accept json
// @Produce json
// @Param q query string false "Title substring search"
// @Param genre query string false "Exact genre filter"
// @Param sort query string false "Sort key (title, title_desc, rating_desc, rating_asc)" default(title)
// @Param page query int false "Page number, clamped into the valid range" default(1)
// @Success 200 {object} utils.StandardResponse "One catalog page"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /anime [get]
func (h *AnimeHandler) BrowseCatalog(c *fiber.Ctx) error {
	ctx := c.Context()

	q := c.Query("q", "")
	genre := c.Query("genre", "")
	sortKey := c.Query("sort", "title")
	page, _ := strconv.Atoi(c.Query("page", "1"))

	result, err := h.service.BrowseCatalog(ctx, q, genre, sortKey, page)
	if err != nil {
		h.logger.WithError(err).Error("Failed to browse catalog")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve catalog")
	}

	meta := CatalogMeta{
		Pagination: utils.CreatePaginationMeta(result.Page, services.CatalogPageSize, result.Total),
		Genres:     result.Genres,
		Sort:       sortKey,
		Query:      q,
		Genre:      genre,
	}
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Catalog retrieved successfully", toCatalogPage(result), meta)
}

// GetAnimeByID godoc
// @Summary Get one anime with its reviews
// @Description Get a single anime plus its reviews ordered by the sort key
// @Tags anime
// @Accept json
// @Produce json
// @Param id path int true "Anime ID"
// @Param sort query string false "Review sort key (newest, rating_desc, rating_asc, likes)" default(newest)
// @Success 200 {object} utils.StandardResponse "Anime details"
// @Failure 400 {object} utils.StandardResponse "Invalid anime ID"
// @Failure 404 {object} utils.StandardResponse "Anime not found"
// @Router /anime/{id} [get]
func (h *AnimeHandler) GetAnimeByID(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid anime ID")
	}

	sortKey := c.Query("sort", "newest")

	anime, err := h.service.GetAnimeByID(ctx, uint(id), sortKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Anime not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to get anime")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve anime")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Anime retrieved successfully", toAnimeDetail(anime))
}

// NewAnimeForm godoc
// @Summary Describe the admin anime creation form
// @Description Admin-only. Returns the accepted form fields for creating an anime
// @Tags admin
// @Accept json
// @Produce json
// @Param key query string true "Admin key"
// @Success 200 {object} utils.StandardResponse "Form field descriptor"
// @Failure 403 {object} utils.StandardResponse "Admin key mismatch"
// @Router /admin/anime/new [get]
func (h *AnimeHandler) NewAnimeForm(c *fiber.Ctx) error {
	form := AdminAnimeForm{
		Required: []string{"title", "genre"},
		Optional: []string{"year", "episodes", "description", "image_path"},
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Anime creation form", form)
}

// CreateAnime godoc
// @Summary Create a new anime
// @Description Admin-only. Creates an anime from form data and redirects to its detail view
// @Tags admin
// @Accept x-www-form-urlencoded
// @Produce json
// @Param key query string true "Admin key"
// @Param title formData string true "Title"
// @Param genre formData string true "Genre"
// @Param year formData int false "Release year"
// @Param episodes formData int false "Episode count"
// @Param description formData string false "Description"
// @Param image_path formData string false "Cover image reference"
// @Success 302 "Redirect to the created anime"
// @Failure 400 {object} utils.StandardResponse "Missing title or genre"
// @Failure 403 {object} utils.StandardResponse "Admin key mismatch"
// @Router /admin/anime/new [post]
func (h *AnimeHandler) CreateAnime(c *fiber.Ctx) error {
	ctx := c.Context()

	input := &services.AnimeInput{
		Title:       c.FormValue("title"),
		Genre:       c.FormValue("genre"),
		Year:        optionalInt(c.FormValue("year")),
		Episodes:    optionalInt(c.FormValue("episodes")),
		Description: c.FormValue("description"),
		ImagePath:   c.FormValue("image_path"),
	}

	anime, err := h.service.CreateAnime(ctx, input)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, vErr.Message)
		}
		h.logger.WithError(err).Error("Failed to create anime")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create anime")
	}

	return c.Redirect(fmt.Sprintf("/api/v1/anime/%d", anime.ID), fiber.StatusFound)
}

// DeleteAnime godoc
// @Summary Delete an anime and all its reviews
// @Description Admin-only. Cascading delete: every review of the anime is removed with it
// @Tags admin
// @Accept json
// @Produce json
// @Param key query string true "Admin key"
// @Param id path int true "Anime ID"
// @Success 200 {object} utils.StandardResponse "Anime deleted"
// @Failure 400 {object} utils.StandardResponse "Invalid anime ID"
// @Failure 403 {object} utils.StandardResponse "Admin key mismatch"
// @Failure 404 {object} utils.StandardResponse "Anime not found"
// @Router /admin/anime/{id} [delete]
func (h *AnimeHandler) DeleteAnime(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid anime ID")
	}

	if err := h.service.DeleteAnime(ctx, uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Anime not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete anime")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete anime")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Anime deleted successfully", nil)
}

// optionalInt parses an optional numeric form field. A blank or
// unparseable value yields nil, matching the lenient ingestion of the
// admin form.
func optionalInt(value string) *int {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &n
}
