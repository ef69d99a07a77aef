package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessPlaceOrder = "order placed successfully"
	MessageSuccessGetOrders  = "order history retrieved successfully"
	MessageSuccessSettlement = "order settled successfully"

	MessageFailedPlaceOrder = "failed to place order"
	MessageFailedGetOrders  = "failed to retrieve order history"
	MessageFailedSettlement = "failed to settle order"

	ErrGameUserIDEmpty    = errors.New("game user id must not be empty")
	ErrPackageNotSelected = errors.New("no topup package selected")
	ErrPackageNotFound    = errors.New("topup package not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotPending    = errors.New("order is not pending")
	ErrPaymentFailed      = errors.New("payment processing failed")
)

type (
	PlaceOrderRequest struct {
		GameID         string `json:"game_id" validate:"required,uuid"`
		GameUserID     string `json:"game_user_id" validate:"required"`
		TopupPackageID string `json:"topup_package_id" validate:"required,uuid"`
	}

	PlaceOrderResponse struct {
		OrderID     string  `json:"order_id"`
		TotalAmount float64 `json:"total_amount"`
		Currency    string  `json:"currency"`
		Status      string  `json:"status"`
		// InvoiceURL is set when settlement runs against the payment
		// gateway; empty in simulated mode.
		InvoiceURL string `json:"invoice_url,omitempty"`
	}

	OrderResponse struct {
		ID             string    `json:"id"`
		GameID         string    `json:"game_id"`
		GameTitle      string    `json:"game_title"`
		GamePictureURL string    `json:"game_picture_url,omitempty"`
		GameUserID     string    `json:"game_user_id"`
		PackageName    string    `json:"package_name"`
		TotalAmount    float64   `json:"total_amount"`
		Currency       string    `json:"currency"`
		Status         string    `json:"status"`
		PaymentMethod  string    `json:"payment_method,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
	}
)
