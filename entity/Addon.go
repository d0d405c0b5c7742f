package entity

import (
	"gorm.io/gorm"
)

type Addon struct {
	gorm.Model
	DishID uint `json:"dishId"`
	Dish   Dish `json:"-"`

	AddonName string `json:"addonName"`
	// minor units per unit of the addon
	Price       int64 `json:"price"`
	IsAvailable bool  `gorm:"not null;default:true" json:"isAvailable"`
}
