package services

import (
	"chopnow/entity"
	"chopnow/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) ListByCategory() ([]entity.DishCategory, error) {
	return s.Repo.ListByCategory()
}

func (s *MenuService) DishDetail(id uint) (*entity.Dish, error) {
	return s.Repo.FindDish(id)
}

func (s *MenuService) ListPackaging() ([]entity.Packaging, error) {
	return s.Repo.ListPackaging()
}

func (s *MenuService) ListLocations() ([]entity.Location, error) {
	return s.Repo.ListLocations()
}

// ---------------- vendor side ----------------

func (s *MenuService) ListAll() ([]entity.Dish, error) {
	return s.Repo.ListAll()
}

func (s *MenuService) CreateDish(dish *entity.Dish) error {
	return s.Repo.CreateDish(dish)
}

func (s *MenuService) UpdateDish(dish *entity.Dish) error {
	return s.Repo.UpdateDish(dish)
}

func (s *MenuService) SetAvailability(id uint, available bool) error {
	return s.Repo.SetAvailability(id, available)
}
