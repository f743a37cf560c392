package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"anime-backend/internal/repository"
	"anime-backend/internal/services"
	"anime-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReviewHandler struct {
	service services.ReviewService
	logger  *logrus.Logger
}

func NewReviewHandler(service services.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger,
	}
}

// CreateReview godoc
// @Summary Submit a review for an anime
// @Description Validates the form fields in order and persists one review; redirects back to the detail view
// @Tags reviews
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path int true "Anime ID"
// @Param nickname formData string true "Author nickname"
// @Param password formData string true "Deletion password (stored hashed)"
// @Param content formData string true "Review text, at most 500 characters"
// @Param rating formData int true "Star rating, 1 to 10"
// @Param spoiler formData string false "Spoiler flag, any non-empty value marks the review"
// @Success 302 "Redirect to the anime detail view"
// @Failure 400 {object} utils.StandardResponse "Validation message"
// @Failure 404 {object} utils.StandardResponse "Anime not found"
// @Router /anime/{id}/review [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	ctx := c.Context()

	animeID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid anime ID")
	}

	input := &services.ReviewInput{
		Nickname: c.FormValue("nickname"),
		Password: c.FormValue("password"),
		Content:  c.FormValue("content"),
		Rating:   c.FormValue("rating"),
		Spoiler:  c.FormValue("spoiler") != "",
	}

	if _, err := h.service.CreateReview(ctx, uint(animeID), input); err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, vErr.Message)
		}
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Anime not found")
		}
		h.logger.WithError(err).WithField("anime_id", animeID).Error("Failed to create review")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create review")
	}

	return c.Redirect(fmt.Sprintf("/api/v1/anime/%d", animeID), fiber.StatusFound)
}

// DeleteReview godoc
// @Summary Delete a review
// @Description Removes the review when the submitted password matches its stored hash
// @Tags reviews
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path int true "Anime ID"
// @Param rid path int true "Review ID"
// @Param password formData string true "Deletion password"
// @Success 302 "Redirect to the anime detail view"
// @Failure 403 {object} utils.StandardResponse "Password missing or mismatched"
// @Failure 404 {object} utils.StandardResponse "Review not found"
// @Router /anime/{id}/review/{rid}/delete [post]
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	ctx := c.Context()

	animeID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid anime ID")
	}
	reviewID, err := strconv.ParseUint(c.Params("rid"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}

	if err := h.service.DeleteReview(ctx, uint(reviewID), c.FormValue("password")); err != nil {
		var aErr *services.AuthorizationError
		if errors.As(err, &aErr) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, aErr.Message)
		}
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Review not found")
		}
		h.logger.WithError(err).WithField("id", reviewID).Error("Failed to delete review")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete review")
	}

	return c.Redirect(fmt.Sprintf("/api/v1/anime/%d", animeID), fiber.StatusFound)
}

// LikeReview godoc
// @Summary Like a review
// @Description Increments the review's like counter by one. No per-caller de-duplication
// @Tags reviews
// @Accept json
// @Produce json
// @Param rid path int true "Review ID"
// @Success 200 {object} map[string]int "New like count"
// @Failure 404 {object} utils.StandardResponse "Review not found"
// @Router /review/{rid}/like [post]
func (h *ReviewHandler) LikeReview(c *fiber.Ctx) error {
	ctx := c.Context()

	reviewID, err := strconv.ParseUint(c.Params("rid"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}

	likes, err := h.service.LikeReview(ctx, uint(reviewID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Review not found")
		}
		h.logger.WithError(err).WithField("id", reviewID).Error("Failed to like review")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to like review")
	}

	return c.JSON(fiber.Map{"likes": likes})
}
