package cart

import (
	"context"
	"errors"

	"github.com/pibich/Akivili-UAS/domain"
	"github.com/pibich/Akivili-UAS/entities"
	"github.com/pibich/Akivili-UAS/pkg/catalog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CartService interface {
		AddToCart(ctx context.Context, req domain.AddToCartRequest, userID string) (*domain.CartItemResponse, error)
		GetCart(ctx context.Context, userID string) (*domain.CartResponse, error)
		RemoveItem(ctx context.Context, userID string, itemID string) error
	}

	cartService struct {
		cartRepository    CartRepository
		catalogRepository catalog.CatalogRepository
	}
)

func NewCartService(cartRepository CartRepository, catalogRepository catalog.CatalogRepository) CartService {
	return &cartService{
		cartRepository:    cartRepository,
		catalogRepository: catalogRepository,
	}
}

func (s *cartService) AddToCart(ctx context.Context, req domain.AddToCartRequest, userID string) (*domain.CartItemResponse, error) {
	if req.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	pkg, err := s.catalogRepository.GetPackageByID(ctx, req.TopupPackageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPackageNotFound
		}
		return nil, err
	}

	item, err := s.cartRepository.AddItem(ctx, userUUID, pkg.ID, req.Quantity)
	if err != nil {
		return nil, err
	}

	return itemResponse(item), nil
}

func (s *cartService) GetCart(ctx context.Context, userID string) (*domain.CartResponse, error) {
	cart, err := s.cartRepository.GetCartByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No cart yet means an empty cart, not an error.
			return &domain.CartResponse{Items: []domain.CartItemResponse{}}, nil
		}
		return nil, err
	}

	items := make([]domain.CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, *itemResponse(item))
	}

	return &domain.CartResponse{
		ID:    cart.ID.String(),
		Items: items,
	}, nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID string, itemID string) error {
	item, err := s.cartRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCartItemNotFound
		}
		return err
	}

	if item.Cart == nil || item.Cart.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.cartRepository.DeleteItem(ctx, itemID)
}

func itemResponse(item *entities.CartItem) *domain.CartItemResponse {
	resp := &domain.CartItemResponse{
		ID:             item.ID.String(),
		TopupPackageID: item.TopupPackageID.String(),
		Quantity:       item.Quantity,
	}
	if item.TopupPackage != nil {
		resp.PackageName = item.TopupPackage.PackageName
		resp.Price = item.TopupPackage.Price
		resp.Currency = item.TopupPackage.Currency
	}
	return resp
}
