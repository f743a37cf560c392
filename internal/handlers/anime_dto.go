package handlers

import (
	"anime-backend/internal/models"
	"anime-backend/internal/services"
	"anime-backend/internal/utils"
)

// AnimeSummary is one catalog row. Average rating is derived from the
// current review set on every request and is absent for unrated titles.
type AnimeSummary struct {
	ID            uint     `json:"id" example:"1"`
	Title         string   `json:"title" example:"Haikyuu!!"`
	Genre         string   `json:"genre" example:"Sports"`
	Year          *int     `json:"year,omitempty" example:"2014"`
	Episodes      *int     `json:"episodes,omitempty" example:"25"`
	ImagePath     string   `json:"image_path" example:"images/haikyuu.jpg"`
	AverageRating *float64 `json:"average_rating,omitempty" example:"8.5"`
	ReviewCount   int      `json:"review_count" example:"3"`
}

// AnimeDetail is the detail view: the summary fields plus description
// and the review list in the requested order.
type AnimeDetail struct {
	AnimeSummary
	Description string          `json:"description,omitempty"`
	Reviews     []models.Review `json:"reviews"`
}

// CatalogMeta accompanies a catalog page: pagination plus the distinct
// genres of the full catalog for building filter UI.
type CatalogMeta struct {
	Pagination utils.PaginationMeta `json:"pagination"`
	Genres     []string             `json:"genres"`
	Sort       string               `json:"sort"`
	Query      string               `json:"q,omitempty"`
	Genre      string               `json:"genre,omitempty"`
}

// AdminAnimeForm describes the admin creation form fields. The HTML
// form itself is rendered client-side.
type AdminAnimeForm struct {
	Required []string `json:"required"`
	Optional []string `json:"optional"`
}

func toAnimeSummary(a *models.Anime) AnimeSummary {
	return AnimeSummary{
		ID:            a.ID,
		Title:         a.Title,
		Genre:         a.Genre,
		Year:          a.Year,
		Episodes:      a.Episodes,
		ImagePath:     a.ImagePath,
		AverageRating: a.AverageRating(),
		ReviewCount:   a.ReviewCount(),
	}
}

func toAnimeDetail(a *models.Anime) AnimeDetail {
	reviews := a.Reviews
	if reviews == nil {
		reviews = []models.Review{}
	}
	return AnimeDetail{
		AnimeSummary: toAnimeSummary(a),
		Description:  a.Description,
		Reviews:      reviews,
	}
}

func toCatalogPage(page *services.CatalogPage) []AnimeSummary {
	summaries := make([]AnimeSummary, 0, len(page.Anime))
	for i := range page.Anime {
		summaries = append(summaries, toAnimeSummary(&page.Anime[i]))
	}
	return summaries
}
