package domain

import (
	"errors"
)

var (
	MessageSuccessAddToCart  = "item added to cart"
	MessageSuccessGetCart    = "cart retrieved successfully"
	MessageSuccessRemoveItem = "cart item removed"

	MessageFailedAddToCart  = "failed to add item to cart"
	MessageFailedGetCart    = "failed to retrieve cart"
	MessageFailedRemoveItem = "failed to remove cart item"

	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrCartItemNotFound = errors.New("cart item not found")
)

type (
	AddToCartRequest struct {
		TopupPackageID string `json:"topup_package_id" validate:"required,uuid"`
		Quantity       int    `json:"quantity" validate:"required,min=1"`
	}

	CartItemResponse struct {
		ID             string  `json:"id"`
		TopupPackageID string  `json:"topup_package_id"`
		PackageName    string  `json:"package_name"`
		Price          float64 `json:"price"`
		Currency       string  `json:"currency"`
		Quantity       int     `json:"quantity"`
	}

	CartResponse struct {
		ID    string             `json:"id"`
		Items []CartItemResponse `json:"items"`
	}
)
