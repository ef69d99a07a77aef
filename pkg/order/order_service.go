package order

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/pibich/Akivili-UAS/domain"
	"github.com/pibich/Akivili-UAS/entities"
	"github.com/pibich/Akivili-UAS/pkg/catalog"
	"github.com/pibich/Akivili-UAS/pkg/midtrans"
	"github.com/pibich/Akivili-UAS/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultSettlementDelay = 5 * time.Second

type (
	OrderService interface {
		PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (*domain.PlaceOrderResponse, error)
		GetUserOrders(ctx context.Context, userID string, page, limit int) ([]*domain.OrderResponse, int64, error)
		HandlePaymentNotification(ctx context.Context, orderID string) error
	}

	orderService struct {
		orderRepository   OrderRepository
		catalogRepository catalog.CatalogRepository
		userRepository    user.UserRepository
		midtransService   midtrans.MidtransService
		scheduler         *SettlementScheduler
		simulated         bool
		settlementDelay   time.Duration
	}
)

func NewOrderService(
	orderRepository OrderRepository,
	catalogRepository catalog.CatalogRepository,
	userRepository user.UserRepository,
	midtransService midtrans.MidtransService,
	scheduler *SettlementScheduler,
	simulated bool,
	settlementDelay time.Duration,
) OrderService {
	if settlementDelay <= 0 {
		settlementDelay = DefaultSettlementDelay
	}
	return &orderService{
		orderRepository:   orderRepository,
		catalogRepository: catalogRepository,
		userRepository:    userRepository,
		midtransService:   midtransService,
		scheduler:         scheduler,
		simulated:         simulated,
		settlementDelay:   settlementDelay,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (*domain.PlaceOrderResponse, error) {
	// Input checks run before any repository call.
	gameUserID := strings.TrimSpace(req.GameUserID)
	if gameUserID == "" {
		return nil, domain.ErrGameUserIDEmpty
	}
	if req.TopupPackageID == "" {
		return nil, domain.ErrPackageNotSelected
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	gameUUID, err := uuid.Parse(req.GameID)
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
	if pkg.GameID != gameUUID {
		return nil, domain.ErrPackageNotFound
	}

	// Price and currency snapshot the package at creation time.
	order := &entities.Order{
		ID:             uuid.New(),
		UserID:         userUUID,
		GameID:         gameUUID,
		GameUserID:     gameUserID,
		TopupPackageID: pkg.ID,
		TotalAmount:    pkg.Price,
		Currency:       pkg.Currency,
		Status:         entities.OrderStatusPending,
	}

	if err := s.orderRepository.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	resp := &domain.PlaceOrderResponse{
		OrderID:     order.ID.String(),
		TotalAmount: order.TotalAmount,
		Currency:    order.Currency,
		Status:      order.Status,
	}

	if s.simulated {
		s.scheduler.Schedule(order.ID.String(), s.settlementDelay, s.settleSimulated)
		return resp, nil
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	invoiceURL, err := s.midtransService.CreateTransaction(order.ID.String(), int64(order.TotalAmount), u.Email)
	if err != nil {
		return nil, domain.ErrPaymentFailed
	}

	resp.InvoiceURL = invoiceURL
	return resp, nil
}

// settleSimulated is the delayed settlement task. A failed update is
// logged and never retried.
func (s *orderService) settleSimulated(orderID string) {
	if err := s.orderRepository.SettleOrder(context.Background(), orderID, "simulated"); err != nil {
		log.Printf("error settling order %s: %v", orderID, err)
	}
}

func (s *orderService) HandlePaymentNotification(ctx context.Context, orderID string) error {
	settled, paymentType, err := s.midtransService.CheckTransaction(orderID)
	if err != nil {
		return err
	}
	if !settled {
		// Non-final gateway states leave the order PENDING.
		return nil
	}

	s.scheduler.Cancel(orderID)
	return s.orderRepository.SettleOrder(ctx, orderID, paymentType)
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string, page, limit int) ([]*domain.OrderResponse, int64, error) {
	orders, count, err := s.orderRepository.GetUserOrders(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp := &domain.OrderResponse{
			ID:            o.ID.String(),
			GameID:        o.GameID.String(),
			GameUserID:    o.GameUserID,
			TotalAmount:   o.TotalAmount,
			Currency:      o.Currency,
			Status:        o.Status,
			PaymentMethod: o.PaymentMethod,
			CreatedAt:     o.CreatedAt,
		}
		if o.Game != nil {
			resp.GameTitle = o.Game.Title
			resp.GamePictureURL = o.Game.PictureURL
		}
		if o.TopupPackage != nil {
			resp.PackageName = o.TopupPackage.PackageName
		}
		result = append(result, resp)
	}

	return result, count, nil
}
