package entities

import (
	"github.com/google/uuid"
)

const (
	OrderStatusPending   = "PENDING"
	OrderStatusPaid      = "PAID"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusFailed    = "FAILED"
)

type Order struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	GameID         uuid.UUID `json:"game_id"`
	GameUserID     string    `json:"game_user_id"`
	TopupPackageID uuid.UUID `json:"topup_package_id"`
	TotalAmount    float64   `json:"total_amount"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"` // PENDING, PAID, COMPLETED, FAILED
	PaymentMethod  string    `json:"payment_method,omitempty"`

	User         *User         `gorm:"foreignKey:UserID"`
	Game         *Game         `gorm:"foreignKey:GameID"`
	TopupPackage *TopupPackage `gorm:"foreignKey:TopupPackageID"`
	Timestamp
}
