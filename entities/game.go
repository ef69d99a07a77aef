package entities

import (
	"github.com/google/uuid"
)

type Game struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	PictureURL  string    `json:"picture_url,omitempty"`
	IsArchived  bool      `json:"is_archived"`

	TopupPackages []*TopupPackage `gorm:"foreignKey:GameID"`
	Timestamp
}

type TopupPackage struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	GameID      uuid.UUID `json:"game_id"`
	PackageName string    `json:"package_name"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	Description string    `json:"description,omitempty"`
	PictureURL  string    `json:"picture_url,omitempty"`
	IsArchived  bool      `json:"is_archived"`

	Game *Game `gorm:"foreignKey:GameID"`
	Timestamp
}
