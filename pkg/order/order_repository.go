package order

import (
	"context"

	"github.com/pibich/Akivili-UAS/domain"
	"github.com/pibich/Akivili-UAS/entities"

	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order) error
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		GetUserOrders(ctx context.Context, userID string, page, limit int) ([]*entities.Order, int64, error)
		SettleOrder(ctx context.Context, id string, paymentMethod string) error
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{
		db: db,
	}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Game").
		Preload("TopupPackage").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetUserOrders(ctx context.Context, userID string, page, limit int) ([]*entities.Order, int64, error) {
	var orders []*entities.Order
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Game").
		Preload("TopupPackage").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, count, nil
}

// SettleOrder moves a PENDING order to PAID. The status guard lives in the
// WHERE clause so an already settled or never-created order is never
// overwritten.
func (r *orderRepository) SettleOrder(ctx context.Context, id string, paymentMethod string) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("id = ? AND status = ?", id, entities.OrderStatusPending).
		Updates(map[string]interface{}{
			"status":         entities.OrderStatusPaid,
			"payment_method": paymentMethod,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotPending
	}
	return nil
}
