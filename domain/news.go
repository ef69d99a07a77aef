package domain

import (
	"errors"
)

var (
	MessageSuccessGetNews = "news retrieved successfully"
	MessageFailedGetNews  = "failed to retrieve news"

	ErrNewsUnavailable = errors.New("news service unavailable")
)

type (
	NewsArticle struct {
		Title       string `json:"title"`
		Description string `json:"description,omitempty"`
		URL         string `json:"url"`
		ImageURL    string `json:"image_url,omitempty"`
		Source      string `json:"source,omitempty"`
		PublishedAt string `json:"published_at,omitempty"`
	}

	NewsFeedResponse struct {
		Articles []NewsArticle `json:"articles"`
		Page     int           `json:"page"`
		HasMore  bool          `json:"has_more"`
	}
)
