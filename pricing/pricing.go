// Package pricing computes line prices for the cart and order pipeline.
// All amounts are int64 minor units (pesewas); decimal is used only at the
// parse and display boundaries.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

const minorFactor = 100

// AddonSelection is one addon chosen for a cart line. Qty below 1 is
// treated as 1.
type AddonSelection struct {
	AddonID uint   `json:"addonId"`
	Name    string `json:"name"`
	Price   int64  `json:"price"`
	Qty     int    `json:"qty"`
}

// PackagingChoice is the single packaging option of a line. The zero
// value is a valid free packaging.
type PackagingChoice struct {
	ID    uint   `json:"id"`
	Type  string `json:"type"`
	Price int64  `json:"price"`
}

// DefaultPackaging is the fallback when no packaging catalog is
// available.
func DefaultPackaging() PackagingChoice {
	return PackagingChoice{Type: "Rubber", Price: 0}
}

// ParseAmount turns a display price like "GHC 25.50" into minor units.
// Non-numeric characters are stripped; anything unparseable is 0, never
// an error.
func ParseAmount(s string) int64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return 0
	}
	return d.Mul(decimal.NewFromInt(minorFactor)).Round(0).IntPart()
}

// UnitPrice is base + addons + packaging for one unit of a line.
func UnitPrice(base int64, selections []AddonSelection, pack PackagingChoice) int64 {
	total := base
	for _, sel := range selections {
		qty := sel.Qty
		if qty < 1 {
			qty = 1
		}
		total += sel.Price * int64(qty)
	}
	return total + pack.Price
}

// LineTotal is the line's contribution to the cart total.
func LineTotal(unitPrice int64, qty int) int64 {
	return unitPrice * int64(qty)
}

// Display renders minor units rounded to two decimals, for API and UI
// boundaries only.
func Display(minor int64) string {
	return decimal.NewFromInt(minor).
		Div(decimal.NewFromInt(minorFactor)).
		StringFixed(2)
}
