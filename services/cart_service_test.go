package services

import (
	"errors"
	"testing"

	"chopnow/entity"
	"chopnow/pkg/apperr"
)

func TestCartAddLine_PricesDishWithAddonsAndPackaging(t *testing.T) {
	env := newTestEnv(t)

	pack := entity.Packaging{PackageType: "Pack", Price: 150}
	env.db.Create(&pack)

	line, err := env.cartSvc.AddLine(env.user.ID, &AddLineIn{
		DishID:      env.dish.ID,
		Qty:         2,
		PackagingID: pack.ID,
		Selections:  []SelectionIn{{AddonID: env.egg.ID, Qty: 2}},
	})
	if err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	// 2000 base + 2x200 egg + 150 pack
	if line.UnitPrice != 2550 {
		t.Errorf("unit price = %d, want 2550", line.UnitPrice)
	}
	if line.Packaging.Type != "Pack" {
		t.Errorf("packaging = %q, want Pack", line.Packaging.Type)
	}
}

func TestCartAddLine_UnknownDish(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.cartSvc.AddLine(env.user.ID, &AddLineIn{DishID: 999, Qty: 1})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCartAddLine_UnavailableDishRejected(t *testing.T) {
	env := newTestEnv(t)

	if err := env.menuRepo.SetAvailability(env.dish.ID, false); err != nil {
		t.Fatalf("SetAvailability: %v", err)
	}
	_, err := env.cartSvc.AddLine(env.user.ID, &AddLineIn{DishID: env.dish.ID, Qty: 1})
	if !errors.Is(err, apperr.ErrItemsUnavailable) {
		t.Errorf("err = %v, want ErrItemsUnavailable", err)
	}
}

func TestCartAddLine_UnavailableAddonRejected(t *testing.T) {
	env := newTestEnv(t)

	if err := env.db.Model(&entity.Addon{}).
		Where("id = ?", env.egg.ID).
		Update("is_available", false).Error; err != nil {
		t.Fatalf("disable addon: %v", err)
	}

	_, err := env.cartSvc.AddLine(env.user.ID, &AddLineIn{
		DishID:     env.dish.ID,
		Qty:        1,
		Selections: []SelectionIn{{AddonID: env.egg.ID, Qty: 1}},
	})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	// the dish without the switched-off addon still carts fine
	if _, err := env.cartSvc.AddLine(env.user.ID, &AddLineIn{DishID: env.dish.ID, Qty: 1}); err != nil {
		t.Errorf("AddLine without selections: %v", err)
	}
}

func TestCartAddLine_AddonFromAnotherDishRejected(t *testing.T) {
	env := newTestEnv(t)

	other := entity.Dish{DishName: "Banku", Price: 1500, Available: true, DishCategoryID: env.dish.DishCategoryID}
	env.db.Create(&other)
	foreign := entity.Addon{DishID: other.ID, AddonName: "Fish", Price: 500, IsAvailable: true}
	env.db.Create(&foreign)

	_, err := env.cartSvc.AddLine(env.user.ID, &AddLineIn{
		DishID:     env.dish.ID,
		Qty:        1,
		Selections: []SelectionIn{{AddonID: foreign.ID, Qty: 1}},
	})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCartAddLine_PackagingFallbackWhenCatalogEmpty(t *testing.T) {
	env := newTestEnv(t)

	// wipe the packaging catalog; pricing must fall back silently
	env.db.Unscoped().Where("1 = 1").Delete(&entity.Packaging{})

	line, err := env.cartSvc.AddLine(env.user.ID, &AddLineIn{DishID: env.dish.ID, Qty: 1})
	if err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	if line.Packaging.Type != "Rubber" || line.Packaging.Price != 0 {
		t.Errorf("fallback packaging = %+v, want free Rubber", line.Packaging)
	}
	if line.UnitPrice != 2000 {
		t.Errorf("unit price = %d, want 2000", line.UnitPrice)
	}
}

func TestCartAddLine_UnknownPackagingFallsBack(t *testing.T) {
	env := newTestEnv(t)

	line, err := env.cartSvc.AddLine(env.user.ID, &AddLineIn{
		DishID: env.dish.ID, Qty: 1, PackagingID: 999,
	})
	if err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	if line.Packaging.Type != "Rubber" || line.Packaging.Price != 0 {
		t.Errorf("fallback packaging = %+v, want free Rubber", line.Packaging)
	}
}

func TestCartGet_ReportsDisplayTotal(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.cartSvc.AddLine(env.user.ID, &AddLineIn{
		DishID: env.dish.ID, Qty: 3, PackagingID: env.rubber.ID,
		Selections: []SelectionIn{{AddonID: env.egg.ID, Qty: 1}},
	}); err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	view, err := env.cartSvc.Get(env.user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if view.Totals.TotalItems != 3 || view.Totals.TotalPrice != 6600 {
		t.Errorf("totals = %+v, want {3 6600}", view.Totals)
	}
	if view.DisplayTotal != "66.00" {
		t.Errorf("display total = %q, want \"66.00\"", view.DisplayTotal)
	}
}

func TestCart_Unauthenticated(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.cartSvc.Get(0); !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Errorf("Get err = %v, want ErrUnauthenticated", err)
	}
	if _, err := env.cartSvc.AddLine(0, &AddLineIn{DishID: env.dish.ID, Qty: 1}); !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Errorf("AddLine err = %v, want ErrUnauthenticated", err)
	}
}
