package routes

import (
	"anime-backend/internal/config"
	"anime-backend/internal/handlers"
	"anime-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, cfg *config.Config, animeHandler *handlers.AnimeHandler, reviewHandler *handlers.ReviewHandler, uploadHandler *handlers.UploadHandler) {
	// Entry redirect into the catalog
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/api/v1/anime", fiber.StatusFound)
	})

	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Public catalog and review routes
	anime := v1.Group("/anime")
	{
		anime.Get("/", animeHandler.BrowseCatalog)
		anime.Get("/:id", animeHandler.GetAnimeByID)
		anime.Post("/:id/review", reviewHandler.CreateReview)
		anime.Post("/:id/review/:rid/delete", reviewHandler.DeleteReview)
	}

	v1.Post("/review/:rid/like", reviewHandler.LikeReview)

	// Admin routes - shared-secret gated
	admin := v1.Group("/admin", adminOnly(cfg.Admin.Key))
	{
		admin.Get("/anime/new", animeHandler.NewAnimeForm)
		admin.Post("/anime/new", animeHandler.CreateAnime)
		admin.Delete("/anime/:id", animeHandler.DeleteAnime)

		if uploadHandler != nil {
			admin.Get("/upload/presign", uploadHandler.GetPresignedURL)
		}
	}
}

// adminOnly compares the "key" query or form parameter against the
// configured shared secret. Any mismatch yields the same generic 403;
// an unconfigured secret disables the admin surface entirely.
func adminOnly(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		provided := c.Query("key")
		if provided == "" {
			provided = c.FormValue("key")
		}

		if key == "" || provided != key {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Forbidden")
		}
		return c.Next()
	}
}
