package cart

import (
	"context"

	"github.com/pibich/Akivili-UAS/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	CartRepository interface {
		AddItem(ctx context.Context, userID uuid.UUID, packageID uuid.UUID, quantity int) (*entities.CartItem, error)
		GetCartByUserID(ctx context.Context, userID string) (*entities.Cart, error)
		GetItemByID(ctx context.Context, itemID string) (*entities.CartItem, error)
		DeleteItem(ctx context.Context, itemID string) error
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{
		db: db,
	}
}

// AddItem performs the whole find-or-create sequence in one transaction:
// the cart insert is insert-or-ignore on the user's unique cart, and the
// item insert increments the quantity on the (cart, package) conflict.
// Concurrent adds therefore never produce duplicate carts or item rows.
func (r *cartRepository) AddItem(ctx context.Context, userID uuid.UUID, packageID uuid.UUID, quantity int) (*entities.CartItem, error) {
	var result entities.CartItem

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart := entities.Cart{
			ID:     uuid.New(),
			UserID: userID,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(&cart).Error; err != nil {
			return err
		}

		// Re-read into a fresh struct: on conflict the insert kept the
		// existing row, and a populated primary key on the destination
		// would sneak into the query conditions and miss it.
		var existing entities.Cart
		if err := tx.Where("user_id = ?", userID).First(&existing).Error; err != nil {
			return err
		}

		item := entities.CartItem{
			ID:             uuid.New(),
			CartID:         existing.ID,
			TopupPackageID: packageID,
			Quantity:       quantity,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "topup_package_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("cart_items.quantity + ?", quantity),
			}),
		}).Create(&item).Error; err != nil {
			return err
		}

		return tx.Preload("TopupPackage").
			Where("cart_id = ? AND topup_package_id = ?", existing.ID, packageID).
			First(&result).Error
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *cartRepository) GetCartByUserID(ctx context.Context, userID string) (*entities.Cart, error) {
	var cart entities.Cart
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.TopupPackage").
		Where("user_id = ?", userID).
		First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetItemByID(ctx context.Context, itemID string) (*entities.CartItem, error) {
	var item entities.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Cart").
		Where("id = ?", itemID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, itemID string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&entities.CartItem{}).Error
}
