package entity

import (
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	DishName string `json:"dishName"`
	Detail   string `json:"detail"`
	// minor units (pesewas)
	Price     int64  `json:"price"`
	Picture   string `json:"picture"`
	Available bool   `gorm:"not null;default:true" json:"available"`

	DishCategoryID uint         `json:"dishCategoryId"`
	DishCategory   DishCategory `json:"-"`

	// preload when the detail view needs the addon catalog
	Addons []Addon `json:"addons,omitempty"`

	OrderItems []OrderItem `json:"-"`
}
