package services

import (
	"fmt"
	"log/slog"

	"chopnow/cart"
	"chopnow/pkg/apperr"
	"chopnow/pricing"
	"chopnow/repository"
)

// CartService validates selections against the menu, prices them and
// hands them to the user's in-memory cart.
type CartService struct {
	Carts    *cart.Store
	MenuRepo *repository.MenuRepository
	Log      *slog.Logger
}

func NewCartService(carts *cart.Store, menuRepo *repository.MenuRepository, log *slog.Logger) *CartService {
	return &CartService{Carts: carts, MenuRepo: menuRepo, Log: log}
}

type SelectionIn struct {
	AddonID uint `json:"addonId" binding:"required"`
	Qty     int  `json:"qty"`
}

type AddLineIn struct {
	DishID      uint          `json:"dishId" binding:"required"`
	Qty         int           `json:"qty" binding:"required,min=1"`
	PackagingID uint          `json:"packagingId"`
	Selections  []SelectionIn `json:"selections"`
}

type CartView struct {
	Lines        []cart.Line `json:"lines"`
	Totals       cart.Totals `json:"totals"`
	DisplayTotal string      `json:"displayTotal"`
}

func (s *CartService) Get(userID uint) (*CartView, error) {
	if userID == 0 {
		return nil, apperr.ErrUnauthenticated
	}
	c := s.Carts.For(userID)
	totals := c.Totals()
	return &CartView{
		Lines:        c.Lines(),
		Totals:       totals,
		DisplayTotal: pricing.Display(totals.TotalPrice),
	}, nil
}

func (s *CartService) AddLine(userID uint, in *AddLineIn) (cart.Line, error) {
	if userID == 0 {
		return cart.Line{}, apperr.ErrUnauthenticated
	}

	dish, err := s.MenuRepo.DishBasics(in.DishID)
	if err != nil {
		return cart.Line{}, err
	}
	if !dish.Available {
		return cart.Line{}, apperr.ErrItemsUnavailable
	}

	// resolve selections against the dish's own addon catalog
	ids := make([]uint, 0, len(in.Selections))
	qtyByID := make(map[uint]int, len(in.Selections))
	for _, sel := range in.Selections {
		ids = append(ids, sel.AddonID)
		qtyByID[sel.AddonID] += sel.Qty
	}
	addons, err := s.MenuRepo.AddonsForDish(dish.ID, ids)
	if err != nil {
		return cart.Line{}, err
	}
	if len(addons) != len(qtyByID) {
		return cart.Line{}, fmt.Errorf("addon not in this dish's catalog: %w", apperr.ErrNotFound)
	}

	selections := make([]pricing.AddonSelection, 0, len(addons))
	for _, a := range addons {
		selections = append(selections, pricing.AddonSelection{
			AddonID: a.ID,
			Name:    a.AddonName,
			Price:   a.Price,
			Qty:     qtyByID[a.ID],
		})
	}

	pack := s.resolvePackaging(in.PackagingID)

	return s.Carts.For(userID).AddLine(
		cart.DishRef{ID: dish.ID, Name: dish.DishName, Price: dish.Price},
		in.Qty, selections, pack,
	)
}

func (s *CartService) UpdateQty(userID uint, lineID string, qty int) error {
	if userID == 0 {
		return apperr.ErrUnauthenticated
	}
	return s.Carts.For(userID).UpdateQuantity(lineID, qty)
}

func (s *CartService) StepQty(userID uint, lineID string, delta int) (int, error) {
	if userID == 0 {
		return 0, apperr.ErrUnauthenticated
	}
	return s.Carts.For(userID).StepQuantity(lineID, delta)
}

func (s *CartService) RemoveLine(userID uint, lineID string) error {
	if userID == 0 {
		return apperr.ErrUnauthenticated
	}
	return s.Carts.For(userID).RemoveLine(lineID)
}

func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return apperr.ErrUnauthenticated
	}
	s.Carts.For(userID).Clear()
	return nil
}

// resolvePackaging picks the requested packaging, the cheapest catalog
// entry when none was requested, or the free fallback when the catalog
// is empty or unreadable. The fallback is logged, never surfaced.
func (s *CartService) resolvePackaging(packagingID uint) pricing.PackagingChoice {
	if packagingID != 0 {
		p, err := s.MenuRepo.FindPackaging(packagingID)
		if err == nil {
			return pricing.PackagingChoice{ID: p.ID, Type: p.PackageType, Price: p.Price}
		}
		s.Log.Warn("packaging lookup failed, using fallback",
			"packagingId", packagingID, "err", err)
		return pricing.DefaultPackaging()
	}

	packs, err := s.MenuRepo.ListPackaging()
	if err != nil || len(packs) == 0 {
		s.Log.Warn("packaging catalog unavailable, using fallback", "err", err)
		return pricing.DefaultPackaging()
	}
	return pricing.PackagingChoice{ID: packs[0].ID, Type: packs[0].PackageType, Price: packs[0].Price}
}
