package repository

import (
	"errors"

	"chopnow/entity"
	"chopnow/pkg/apperr"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ListByCategory returns the menu grouped by category, addons excluded.
func (r *MenuRepository) ListByCategory() ([]entity.DishCategory, error) {
	var cats []entity.DishCategory
	err := r.DB.
		Preload("Dishes").
		Find(&cats).Error
	return cats, err
}

// FindDish loads one dish including its addon catalog.
func (r *MenuRepository) FindDish(id uint) (*entity.Dish, error) {
	var dish entity.Dish
	err := r.DB.
		Preload("Addons", "is_available = ?", true).
		First(&dish, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &dish, nil
}

// DishBasics is the slice of a dish the cart needs to price a line.
func (r *MenuRepository) DishBasics(id uint) (entity.Dish, error) {
	var dish entity.Dish
	err := r.DB.Select("id, dish_name, price, available").First(&dish, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dish, apperr.ErrNotFound
	}
	return dish, err
}

// AddonsForDish resolves selected addon IDs, restricted to the dish's
// own catalog so a selection cannot reference another dish's addon or
// one the vendor has switched off.
func (r *MenuRepository) AddonsForDish(dishID uint, addonIDs []uint) ([]entity.Addon, error) {
	if len(addonIDs) == 0 {
		return nil, nil
	}
	var addons []entity.Addon
	err := r.DB.
		Where("dish_id = ? AND id IN ? AND is_available = ?", dishID, addonIDs, true).
		Find(&addons).Error
	return addons, err
}

func (r *MenuRepository) ListPackaging() ([]entity.Packaging, error) {
	var packs []entity.Packaging
	err := r.DB.Order("price ASC").Find(&packs).Error
	return packs, err
}

func (r *MenuRepository) FindPackaging(id uint) (*entity.Packaging, error) {
	var pack entity.Packaging
	if err := r.DB.First(&pack, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &pack, nil
}

func (r *MenuRepository) ListLocations() ([]entity.Location, error) {
	var locs []entity.Location
	err := r.DB.Find(&locs).Error
	return locs, err
}

func (r *MenuRepository) LocationExists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Location{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ---------------- vendor menu management ----------------

func (r *MenuRepository) ListAll() ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.Preload("Addons").Find(&dishes).Error
	return dishes, err
}

func (r *MenuRepository) CreateDish(dish *entity.Dish) error {
	return r.DB.Create(dish).Error
}

func (r *MenuRepository) UpdateDish(dish *entity.Dish) error {
	return r.DB.Save(dish).Error
}

func (r *MenuRepository) SetAvailability(id uint, available bool) error {
	res := r.DB.Model(&entity.Dish{}).Where("id = ?", id).Update("available", available)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
