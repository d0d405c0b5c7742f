package entity

import (
	"gorm.io/gorm"
)

type Packaging struct {
	gorm.Model
	PackageType string `json:"packageType"`
	// minor units; the fallback row is zero-priced
	Price int64 `json:"price"`

	Orders []Order `json:"-"`
}
