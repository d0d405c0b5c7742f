package entity

import (
	"gorm.io/gorm"
)

type Location struct {
	gorm.Model
	LocationName string `json:"locationName"`

	Orders []Order `json:"-"`
}
