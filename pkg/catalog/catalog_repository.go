package catalog

import (
	"context"

	"github.com/pibich/Akivili-UAS/entities"

	"gorm.io/gorm"
)

type (
	CatalogRepository interface {
		GetGames(ctx context.Context) ([]*entities.Game, error)
		GetGameByID(ctx context.Context, id string) (*entities.Game, error)
		GetGamePackages(ctx context.Context, gameID string) ([]*entities.TopupPackage, error)
		GetPackageByID(ctx context.Context, id string) (*entities.TopupPackage, error)
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

func (r *catalogRepository) GetGames(ctx context.Context) ([]*entities.Game, error) {
	var games []*entities.Game
	if err := r.db.WithContext(ctx).
		Where("is_archived = ?", false).
		Order("created_at DESC").
		Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *catalogRepository) GetGameByID(ctx context.Context, id string) (*entities.Game, error) {
	var game entities.Game
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_archived = ?", id, false).
		First(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *catalogRepository) GetGamePackages(ctx context.Context, gameID string) ([]*entities.TopupPackage, error) {
	var packages []*entities.TopupPackage
	if err := r.db.WithContext(ctx).
		Where("game_id = ? AND is_archived = ?", gameID, false).
		Order("price ASC").
		Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *catalogRepository) GetPackageByID(ctx context.Context, id string) (*entities.TopupPackage, error) {
	var pkg entities.TopupPackage
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_archived = ?", id, false).
		First(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}
