package models

import "time"

// Review rating bounds and content limit, enforced before insert.
const (
	MinRating        = 1
	MaxRating        = 10
	MaxContentLength = 500
)

type Review struct {
	ID           uint      `gorm:"primaryKey" json:"id" example:"1"`
	AnimeID      uint      `gorm:"not null;index" json:"anime_id" example:"1"`
	Nickname     string    `gorm:"not null;size:30" json:"nickname" example:"kenma"`
	PasswordHash string    `gorm:"not null;size:200" json:"-"`
	Rating       int       `gorm:"not null" json:"rating" example:"9"`
	Content      string    `gorm:"type:text;not null" json:"content" example:"Best sports anime arc to date."`
	Spoiler      bool      `gorm:"not null;default:false" json:"spoiler" example:"false"`
	LikeCount    int       `gorm:"not null;default:0" json:"like_count" example:"0"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
