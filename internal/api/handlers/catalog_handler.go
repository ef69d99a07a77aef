package handlers

import (
	"errors"

	"github.com/pibich/Akivili-UAS/domain"
	"github.com/pibich/Akivili-UAS/internal/api/presenters"
	"github.com/pibich/Akivili-UAS/pkg/catalog"

	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		GetGames(c *fiber.Ctx) error
		GetGameDetail(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
	}
}

func (h *catalogHandler) GetGames(c *fiber.Ctx) error {
	games, err := h.catalogService.GetGames(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetGames, err)
	}

	return presenters.SuccessResponse(c, games, fiber.StatusOK, domain.MessageSuccessGetGames)
}

func (h *catalogHandler) GetGameDetail(c *fiber.Ctx) error {
	gameID := c.Params("id")

	detail, err := h.catalogService.GetGameWithPackages(c.Context(), gameID)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrGameNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetGameDetail, err)
	}

	return presenters.SuccessResponse(c, detail, fiber.StatusOK, domain.MessageSuccessGetGameDetail)
}
