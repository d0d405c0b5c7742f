package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNumber string `gorm:"uniqueIndex" json:"orderNumber"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only when the vendor view needs customer detail

	OrderStatusID uint        `json:"orderStatusId"`
	OrderStatus   OrderStatus `json:"orderStatus"`

	// sum of item quantities, snapshot at creation
	Qty int64 `json:"qty"`
	// minor units
	Total int64 `json:"total"`

	LocationID uint     `json:"locationId"`
	Location   Location `json:"-"`

	// packaging of the first line at checkout; each line's own packaging
	// cost is already folded into its item unit price
	PackagingID uint      `json:"packagingId"`
	Packaging   Packaging `json:"-"`

	Instructions string `json:"instructions"`

	// preload only on the detail endpoints
	OrderItems []OrderItem `json:"-"`
}
