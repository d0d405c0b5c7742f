package configs

import (
	"log"

	"chopnow/entity"
	"chopnow/pricing"

	"golang.org/x/crypto/bcrypt"
)

// SeedVendor creates the vendor account on first boot.
func SeedVendor() error {
	db := DB()
	email := getEnv("VENDOR_EMAIL", "")
	pass := getEnv("VENDOR_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding vendor: missing VENDOR_EMAIL/VENDOR_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("vendor already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	vendor := entity.User{
		Email:    email,
		Password: string(hash),
		Username: "Vendor",
		Role:     "vendor",
	}
	return db.Create(&vendor).Error
}

// SeedLookups fills the lookup tables the pipeline depends on.
func SeedLookups() error {
	db := DB()

	// Order lifecycle
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Placed"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Preparing"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Ready"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Completed"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Cancelled"})

	// Packaging; the Rubber row is the free fallback the cart relies on
	db.FirstOrCreate(&entity.Packaging{}, entity.Packaging{PackageType: "Rubber", Price: 0})
	db.FirstOrCreate(&entity.Packaging{}, entity.Packaging{PackageType: "Pack", Price: 200})

	// Pickup locations
	db.FirstOrCreate(&entity.Location{}, entity.Location{LocationName: "Main Campus"})
	db.FirstOrCreate(&entity.Location{}, entity.Location{LocationName: "North Hostel"})

	// Menu categories
	db.FirstOrCreate(&entity.DishCategory{}, entity.DishCategory{CategoryName: "Rice Dishes"})
	db.FirstOrCreate(&entity.DishCategory{}, entity.DishCategory{CategoryName: "Soups"})
	db.FirstOrCreate(&entity.DishCategory{}, entity.DishCategory{CategoryName: "Drinks"})

	log.Println("lookup tables seeded")
	return nil
}

// SeedDemoMenu loads a starter menu on an empty database. Prices come
// from the vendor's printed menu, so they pass through the display
// parser.
func SeedDemoMenu() error {
	db := DB()

	var cnt int64
	db.Model(&entity.Dish{}).Count(&cnt)
	if cnt > 0 {
		return nil
	}

	var rice, soups entity.DishCategory
	if err := db.Where("category_name = ?", "Rice Dishes").First(&rice).Error; err != nil {
		return err
	}
	if err := db.Where("category_name = ?", "Soups").First(&soups).Error; err != nil {
		return err
	}

	dishes := []entity.Dish{
		{
			DishName: "Jollof Rice", Detail: "With fried plantain",
			Price: pricing.ParseAmount("GHC 20.00"), Available: true, DishCategoryID: rice.ID,
			Addons: []entity.Addon{
				{AddonName: "Egg", Price: pricing.ParseAmount("GHC 2.00"), IsAvailable: true},
				{AddonName: "Chicken", Price: pricing.ParseAmount("GHC 8.00"), IsAvailable: true},
			},
		},
		{
			DishName: "Waakye", Detail: "Rice and beans with shito",
			Price: pricing.ParseAmount("GHC 18.50"), Available: true, DishCategoryID: rice.ID,
			Addons: []entity.Addon{
				{AddonName: "Fish", Price: pricing.ParseAmount("GHC 5.00"), IsAvailable: true},
				{AddonName: "Gari", Price: pricing.ParseAmount("GHC 1.00"), IsAvailable: true},
			},
		},
		{
			DishName: "Groundnut Soup", Detail: "Served with rice balls",
			Price: pricing.ParseAmount("GHC 25.50"), Available: true, DishCategoryID: soups.ID,
		},
	}
	for i := range dishes {
		if err := db.Create(&dishes[i]).Error; err != nil {
			return err
		}
	}

	log.Println("demo menu seeded")
	return nil
}
