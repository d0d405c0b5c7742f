package entity

import (
	"gorm.io/gorm"
)

type OrderItemAddon struct {
	gorm.Model
	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	AddonID uint  `json:"addonId"`
	Addon   Addon `json:"-"`

	// snapshot so the order stays auditable if the catalog changes
	AddonName string `json:"addonName"`
	Price     int64  `json:"price"`
	Qty       int    `json:"qty"`
}
