package models

import (
	"time"
)

// DefaultImagePath is substituted when an anime is created without a
// cover image reference.
const DefaultImagePath = "images/default.jpg"

type Anime struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	Title       string    `gorm:"not null;index" json:"title" example:"Haikyuu!!"`
	Genre       string    `gorm:"not null;index" json:"genre" example:"Sports"`
	Year        *int      `json:"year,omitempty" example:"2014"`
	Episodes    *int      `json:"episodes,omitempty" example:"25"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	ImagePath   string    `json:"image_path" example:"images/haikyuu.jpg"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	Reviews     []Review  `gorm:"foreignKey:AnimeID" json:"reviews,omitempty"`
}

func (Anime) TableName() string {
	return "animes"
}

// AverageRating returns the arithmetic mean of the loaded reviews'
// ratings, or nil when the anime has no reviews. It is always derived
// from the current review set and never stored.
func (a *Anime) AverageRating() *float64 {
	if len(a.Reviews) == 0 {
		return nil
	}
	sum := 0
	for _, r := range a.Reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(a.Reviews))
	return &avg
}

// RatingOrZero is the ordering key for rating sorts: an anime with no
// reviews ranks as 0 so unrated titles sort last in descending order.
func (a *Anime) RatingOrZero() float64 {
	if avg := a.AverageRating(); avg != nil {
		return *avg
	}
	return 0
}

func (a *Anime) ReviewCount() int {
	return len(a.Reviews)
}
