package handlers

import (
	"strconv"

	"github.com/pibich/Akivili-UAS/domain"
	"github.com/pibich/Akivili-UAS/internal/api/presenters"
	"github.com/pibich/Akivili-UAS/pkg/news"

	"github.com/gofiber/fiber/v2"
)

type (
	NewsHandler interface {
		GetNews(c *fiber.Ctx) error
	}

	newsHandler struct {
		newsService news.NewsService
	}
)

func NewNewsHandler(newsService news.NewsService) NewsHandler {
	return &newsHandler{
		newsService: newsService,
	}
}

func (h *newsHandler) GetNews(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	resp, err := h.newsService.GetNews(c.Context(), page)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetNews, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetNews)
}
