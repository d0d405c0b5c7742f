// Package cart is the in-memory, session-scoped shopping cart. Lines are
// merged by structural identity (dish + normalized addon selections) and
// the aggregates are updated in the same locked step as every mutation,
// so they can never drift from the line collection.
package cart

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"chopnow/pkg/apperr"
	"chopnow/pricing"

	"github.com/google/uuid"
)

// DishRef is the slice of the menu a cart line needs: identity, display
// name and base price in minor units.
type DishRef struct {
	ID    uint
	Name  string
	Price int64
}

// Line is one cart entry. ID is the line identity, distinct from the
// dish: the same dish with different addons is a different line.
type Line struct {
	ID         string                   `json:"id"`
	DishID     uint                     `json:"dishId"`
	DishName   string                   `json:"dishName"`
	Qty        int                      `json:"qty"`
	UnitPrice  int64                    `json:"unitPrice"`
	Selections []pricing.AddonSelection `json:"selections"`
	Packaging  pricing.PackagingChoice  `json:"packaging"`

	key string
}

type Totals struct {
	TotalItems int   `json:"totalItems"`
	TotalPrice int64 `json:"totalPrice"`
}

type Cart struct {
	mu         sync.Mutex
	lines      []*Line
	totalItems int
	totalPrice int64
}

func New() *Cart { return &Cart{} }

// AddLine prices the line and either merges it into an existing line
// with the same structural key or appends it with a fresh line ID.
func (c *Cart) AddLine(dish DishRef, qty int, selections []pricing.AddonSelection, pack pricing.PackagingChoice) (Line, error) {
	if qty < 1 {
		return Line{}, apperr.ErrInvalidQuantity
	}

	norm := normalizeSelections(selections)
	unit := pricing.UnitPrice(dish.Price, norm, pack)
	key := structuralKey(dish.ID, norm)

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ln := range c.lines {
		if ln.key == key {
			// the line keeps its add-time unit price
			ln.Qty += qty
			c.totalItems += qty
			c.totalPrice += pricing.LineTotal(ln.UnitPrice, qty)
			return snapshot(ln), nil
		}
	}

	ln := &Line{
		ID:         newLineID(),
		DishID:     dish.ID,
		DishName:   dish.Name,
		Qty:        qty,
		UnitPrice:  unit,
		Selections: norm,
		Packaging:  pack,
		key:        key,
	}
	c.lines = append(c.lines, ln)
	c.totalItems += qty
	c.totalPrice += pricing.LineTotal(unit, qty)
	return snapshot(ln), nil
}

// RemoveLine deletes the line and subtracts exactly its contribution.
func (c *Cart) RemoveLine(lineID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, ln := range c.lines {
		if ln.ID == lineID {
			c.totalItems -= ln.Qty
			c.totalPrice -= pricing.LineTotal(ln.UnitPrice, ln.Qty)
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return apperr.ErrLineNotFound
}

// UpdateQuantity sets an absolute quantity. Below 1 is rejected; removal
// is an explicit operation, never a side effect.
func (c *Cart) UpdateQuantity(lineID string, qty int) error {
	if qty < 1 {
		return apperr.ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ln := range c.lines {
		if ln.ID == lineID {
			delta := qty - ln.Qty
			ln.Qty = qty
			c.totalItems += delta
			c.totalPrice += pricing.LineTotal(ln.UnitPrice, delta)
			return nil
		}
	}
	return apperr.ErrLineNotFound
}

// StepQuantity adjusts by delta, clamped at 1. Backs the +/- buttons.
func (c *Cart) StepQuantity(lineID string, delta int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ln := range c.lines {
		if ln.ID == lineID {
			qty := ln.Qty + delta
			if qty < 1 {
				qty = 1
			}
			applied := qty - ln.Qty
			ln.Qty = qty
			c.totalItems += applied
			c.totalPrice += pricing.LineTotal(ln.UnitPrice, applied)
			return qty, nil
		}
	}
	return 0, apperr.ErrLineNotFound
}

// Clear resets to an empty cart. Idempotent.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.totalItems = 0
	c.totalPrice = 0
}

func (c *Cart) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Totals{TotalItems: c.totalItems, TotalPrice: c.totalPrice}
}

// Lines returns a snapshot of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, 0, len(c.lines))
	for _, ln := range c.lines {
		out = append(out, snapshot(ln))
	}
	return out
}

// Line returns one line by ID.
func (c *Cart) Line(lineID string) (Line, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ln := range c.lines {
		if ln.ID == lineID {
			return snapshot(ln), nil
		}
	}
	return Line{}, apperr.ErrLineNotFound
}

func snapshot(ln *Line) Line {
	out := *ln
	out.Selections = append([]pricing.AddonSelection(nil), ln.Selections...)
	return out
}

// normalizeSelections dedupes by addon name (quantities summed, missing
// quantity means 1) and sorts, so equality is order-independent.
func normalizeSelections(selections []pricing.AddonSelection) []pricing.AddonSelection {
	byName := make(map[string]pricing.AddonSelection, len(selections))
	for _, sel := range selections {
		qty := sel.Qty
		if qty < 1 {
			qty = 1
		}
		if prev, ok := byName[sel.Name]; ok {
			prev.Qty += qty
			byName[sel.Name] = prev
			continue
		}
		sel.Qty = qty
		byName[sel.Name] = sel
	}

	out := make([]pricing.AddonSelection, 0, len(byName))
	for _, sel := range byName {
		out = append(out, sel)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func structuralKey(dishID uint, norm []pricing.AddonSelection) string {
	parts := make([]string, 0, len(norm)+1)
	parts = append(parts, fmt.Sprintf("d%d", dishID))
	for _, sel := range norm {
		parts = append(parts, fmt.Sprintf("%s:%d", sel.Name, sel.Qty))
	}
	return strings.Join(parts, "|")
}

// newLineID must never collide within a session.
func newLineID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
