package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	DishID uint `json:"dishId"`
	Dish   Dish `json:"-"` // preload only when the dish name is needed

	Qty int `json:"qty"`
	// minor units, snapshot of the priced cart line
	UnitPrice int64 `json:"unitPrice"`
	Total     int64 `json:"total"`

	Addons []OrderItemAddon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"addons"`
}
