package catalog

import (
	"context"
	"errors"

	"github.com/pibich/Akivili-UAS/domain"

	"gorm.io/gorm"
)

type (
	CatalogService interface {
		GetGames(ctx context.Context) ([]*domain.GameResponse, error)
		GetGameWithPackages(ctx context.Context, gameID string) (*domain.GameDetailResponse, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
	}
}

func (s *catalogService) GetGames(ctx context.Context) ([]*domain.GameResponse, error) {
	games, err := s.catalogRepository.GetGames(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.GameResponse, 0, len(games))
	for _, game := range games {
		result = append(result, &domain.GameResponse{
			ID:          game.ID.String(),
			Title:       game.Title,
			Description: game.Description,
			PictureURL:  game.PictureURL,
			CreatedAt:   game.CreatedAt,
		})
	}

	return result, nil
}

func (s *catalogService) GetGameWithPackages(ctx context.Context, gameID string) (*domain.GameDetailResponse, error) {
	game, err := s.catalogRepository.GetGameByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGameNotFound
		}
		return nil, err
	}

	packages, err := s.catalogRepository.GetGamePackages(ctx, gameID)
	if err != nil {
		return nil, err
	}

	packageResponses := make([]domain.TopupPackageResponse, 0, len(packages))
	for _, pkg := range packages {
		packageResponses = append(packageResponses, domain.TopupPackageResponse{
			ID:          pkg.ID.String(),
			GameID:      pkg.GameID.String(),
			PackageName: pkg.PackageName,
			Price:       pkg.Price,
			Currency:    pkg.Currency,
			Description: pkg.Description,
			PictureURL:  pkg.PictureURL,
		})
	}

	return &domain.GameDetailResponse{
		Game: domain.GameResponse{
			ID:          game.ID.String(),
			Title:       game.Title,
			Description: game.Description,
			PictureURL:  game.PictureURL,
			CreatedAt:   game.CreatedAt,
		},
		Packages: packageResponses,
	}, nil
}
