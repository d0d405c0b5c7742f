package configs

import (
	"chopnow/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(dsn string) {
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.DishCategory{},
		&entity.Dish{},
		&entity.Addon{},
		&entity.Packaging{},
		&entity.Location{},
		&entity.OrderStatus{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.OrderItemAddon{},
	)
	if err != nil {
		panic("failed to migrate database")
	}
}
