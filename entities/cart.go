package entities

import (
	"github.com/google/uuid"
)

type Cart struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"uniqueIndex" json:"user_id"`

	User  *User       `gorm:"foreignKey:UserID"`
	Items []*CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	Timestamp
}

// CartItem rows are unique per (cart, package); adding the same package
// again increments Quantity instead of inserting a second row.
type CartItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CartID         uuid.UUID `gorm:"uniqueIndex:idx_cart_package" json:"cart_id"`
	TopupPackageID uuid.UUID `gorm:"uniqueIndex:idx_cart_package" json:"topup_package_id"`
	Quantity       int       `json:"quantity"`

	Cart         *Cart         `gorm:"foreignKey:CartID"`
	TopupPackage *TopupPackage `gorm:"foreignKey:TopupPackageID"`
	Timestamp
}
