package entity

import (
	"gorm.io/gorm"
)

type DishCategory struct {
	gorm.Model
	CategoryName string `json:"categoryName"`

	Dishes []Dish `json:"-"`
}
