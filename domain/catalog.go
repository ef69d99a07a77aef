package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetGames      = "games retrieved successfully"
	MessageSuccessGetGameDetail = "game detail retrieved successfully"

	MessageFailedGetGames      = "failed to retrieve games"
	MessageFailedGetGameDetail = "failed to retrieve game detail"

	ErrGameNotFound = errors.New("game not found")
)

type (
	GameResponse struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Description string    `json:"description,omitempty"`
		PictureURL  string    `json:"picture_url,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	TopupPackageResponse struct {
		ID          string  `json:"id"`
		GameID      string  `json:"game_id"`
		PackageName string  `json:"package_name"`
		Price       float64 `json:"price"`
		Currency    string  `json:"currency"`
		Description string  `json:"description,omitempty"`
		PictureURL  string  `json:"picture_url,omitempty"`
	}

	GameDetailResponse struct {
		Game     GameResponse           `json:"game"`
		Packages []TopupPackageResponse `json:"packages"`
	}
)
