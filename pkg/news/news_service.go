package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pibich/Akivili-UAS/domain"
)

const (
	defaultBaseURL = "https://newsapi.org/v2/everything"
	pageSize       = 20

	// Storefront-related topics shown on the news tab.
	newsQuery = `("game shop" OR "top up game" OR "game voucher" OR "mobile game" OR "digital wallet" OR "technology" OR "fintech")`
)

type (
	NewsService interface {
		GetNews(ctx context.Context, page int) (*domain.NewsFeedResponse, error)
	}

	newsService struct {
		baseURL    string
		apiKey     string
		httpClient *http.Client
	}
)

func NewNewsService(baseURL, apiKey string) NewsService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &newsService{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (s *newsService) GetNews(ctx context.Context, page int) (*domain.NewsFeedResponse, error) {
	if page < 1 {
		page = 1
	}

	query := url.Values{}
	query.Set("q", newsQuery)
	query.Set("language", "en")
	query.Set("sortBy", "popularity")
	query.Set("pageSize", fmt.Sprintf("%d", pageSize))
	query.Set("page", fmt.Sprintf("%d", page))
	query.Set("apiKey", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, "GET", s.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, domain.ErrNewsUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("news API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var apiResp struct {
		Status   string `json:"status"`
		Articles []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
			URLToImage  string `json:"urlToImage"`
			PublishedAt string `json:"publishedAt"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"articles"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, err
	}

	articles := make([]domain.NewsArticle, 0, len(apiResp.Articles))
	for _, a := range apiResp.Articles {
		articles = append(articles, domain.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
		})
	}

	return &domain.NewsFeedResponse{
		Articles: articles,
		Page:     page,
		// A full page probably means more results behind it.
		HasMore: len(articles) == pageSize,
	}, nil
}
