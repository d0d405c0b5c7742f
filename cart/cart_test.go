package cart

import (
	"errors"
	"testing"

	"chopnow/pkg/apperr"
	"chopnow/pricing"
)

var (
	jollof = DishRef{ID: 1, Name: "Jollof Rice", Price: 2000}
	banku  = DishRef{ID: 2, Name: "Banku", Price: 1500}
	egg    = pricing.AddonSelection{AddonID: 10, Name: "Egg", Price: 200, Qty: 1}
	fish   = pricing.AddonSelection{AddonID: 11, Name: "Fish", Price: 500, Qty: 1}
	rubber = pricing.PackagingChoice{Type: "Rubber", Price: 0}
)

func checkTotals(t *testing.T, c *Cart, items int, price int64) {
	t.Helper()
	got := c.Totals()
	if got.TotalItems != items || got.TotalPrice != price {
		t.Errorf("totals = %+v, want {%d %d}", got, items, price)
	}
}

// recompute verifies the aggregates against the line collection.
func recompute(t *testing.T, c *Cart) {
	t.Helper()
	var items int
	var price int64
	for _, ln := range c.Lines() {
		items += ln.Qty
		price += ln.UnitPrice * int64(ln.Qty)
	}
	got := c.Totals()
	if got.TotalItems != items || got.TotalPrice != price {
		t.Errorf("aggregates drifted: totals=%+v, recomputed={%d %d}", got, items, price)
	}
}

func TestAddLine_MergesIdenticalSelections(t *testing.T) {
	c := New()

	first, err := c.AddLine(jollof, 2, []pricing.AddonSelection{egg}, rubber)
	if err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	if first.UnitPrice != 2200 {
		t.Errorf("unit price = %d, want 2200", first.UnitPrice)
	}
	checkTotals(t, c, 2, 4400)

	second, err := c.AddLine(jollof, 1, []pricing.AddonSelection{egg}, rubber)
	if err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected merge into line %s, got new line %s", first.ID, second.ID)
	}
	if second.Qty != 3 {
		t.Errorf("merged qty = %d, want 3", second.Qty)
	}
	if n := len(c.Lines()); n != 1 {
		t.Errorf("line count = %d, want 1", n)
	}
	checkTotals(t, c, 3, 6600)
	recompute(t, c)
}

func TestAddLine_MergeIsOrderIndependent(t *testing.T) {
	c := New()

	if _, err := c.AddLine(jollof, 1, []pricing.AddonSelection{egg, fish}, rubber); err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	if _, err := c.AddLine(jollof, 1, []pricing.AddonSelection{fish, egg}, rubber); err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	if n := len(c.Lines()); n != 1 {
		t.Errorf("line count = %d, want 1 (selections differ only in order)", n)
	}
	checkTotals(t, c, 2, 2*(2000+200+500))
}

func TestAddLine_DifferentSelectionsStayDistinct(t *testing.T) {
	c := New()

	if _, err := c.AddLine(jollof, 1, []pricing.AddonSelection{egg}, rubber); err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	if _, err := c.AddLine(jollof, 1, []pricing.AddonSelection{fish}, rubber); err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	if _, err := c.AddLine(jollof, 1, nil, rubber); err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	if n := len(c.Lines()); n != 3 {
		t.Errorf("line count = %d, want 3", n)
	}
	recompute(t, c)
}

func TestAddLine_LineIDsAreUnique(t *testing.T) {
	c := New()
	seen := map[string]bool{}

	dishes := []DishRef{jollof, banku}
	for i := 0; i < 50; i++ {
		sel := pricing.AddonSelection{Name: "Pepper", Price: 50, Qty: i + 1}
		ln, err := c.AddLine(dishes[i%2], 1, []pricing.AddonSelection{sel}, rubber)
		if err != nil {
			t.Fatalf("AddLine: %v", err)
		}
		if seen[ln.ID] {
			t.Fatalf("duplicate line id %s", ln.ID)
		}
		seen[ln.ID] = true
	}
}

func TestAddLine_RejectsZeroQty(t *testing.T) {
	c := New()
	if _, err := c.AddLine(jollof, 0, nil, rubber); !errors.Is(err, apperr.ErrInvalidQuantity) {
		t.Errorf("err = %v, want ErrInvalidQuantity", err)
	}
	checkTotals(t, c, 0, 0)
}

func TestRemoveLine(t *testing.T) {
	c := New()
	ln, _ := c.AddLine(jollof, 2, []pricing.AddonSelection{egg}, rubber)
	c.AddLine(banku, 1, nil, rubber)

	if err := c.RemoveLine(ln.ID); err != nil {
		t.Fatalf("RemoveLine: %v", err)
	}
	checkTotals(t, c, 1, 1500)
	recompute(t, c)

	if err := c.RemoveLine(ln.ID); !errors.Is(err, apperr.ErrLineNotFound) {
		t.Errorf("err = %v, want ErrLineNotFound", err)
	}
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	ln, _ := c.AddLine(jollof, 2, []pricing.AddonSelection{egg}, rubber)

	if err := c.UpdateQuantity(ln.ID, 5); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	checkTotals(t, c, 5, 5*2200)

	if err := c.UpdateQuantity(ln.ID, 0); !errors.Is(err, apperr.ErrInvalidQuantity) {
		t.Errorf("err = %v, want ErrInvalidQuantity", err)
	}
	checkTotals(t, c, 5, 5*2200)

	if err := c.UpdateQuantity("missing", 3); !errors.Is(err, apperr.ErrLineNotFound) {
		t.Errorf("err = %v, want ErrLineNotFound", err)
	}
}

func TestStepQuantity_ClampsAtOne(t *testing.T) {
	c := New()
	ln, _ := c.AddLine(jollof, 2, nil, rubber)

	qty, err := c.StepQuantity(ln.ID, -1)
	if err != nil || qty != 1 {
		t.Fatalf("StepQuantity = %d, %v; want 1, nil", qty, err)
	}

	// decrementing at 1 stays at 1, the line is never removed
	qty, err = c.StepQuantity(ln.ID, -1)
	if err != nil || qty != 1 {
		t.Fatalf("StepQuantity = %d, %v; want 1, nil", qty, err)
	}
	if n := len(c.Lines()); n != 1 {
		t.Errorf("line count = %d, want 1", n)
	}
	checkTotals(t, c, 1, 2000)
	recompute(t, c)
}

func TestClear_Idempotent(t *testing.T) {
	c := New()
	c.AddLine(jollof, 2, []pricing.AddonSelection{egg}, rubber)

	c.Clear()
	checkTotals(t, c, 0, 0)
	if n := len(c.Lines()); n != 0 {
		t.Errorf("line count = %d, want 0", n)
	}

	c.Clear()
	checkTotals(t, c, 0, 0)
}

func TestAggregateConsistency_AcrossMutations(t *testing.T) {
	c := New()

	a, _ := c.AddLine(jollof, 2, []pricing.AddonSelection{egg}, rubber)
	b, _ := c.AddLine(banku, 4, []pricing.AddonSelection{fish}, pricing.PackagingChoice{Type: "Pack", Price: 150})
	c.AddLine(jollof, 3, []pricing.AddonSelection{egg}, rubber) // merges into a

	recompute(t, c)

	c.UpdateQuantity(a.ID, 1)
	recompute(t, c)

	c.StepQuantity(b.ID, 2)
	recompute(t, c)

	c.RemoveLine(a.ID)
	recompute(t, c)
}

func TestStore_IsolatesUsers(t *testing.T) {
	s := NewStore()

	s.For(1).AddLine(jollof, 1, nil, rubber)
	if got := s.For(2).Totals(); got.TotalItems != 0 {
		t.Errorf("user 2 cart not empty: %+v", got)
	}
	if got := s.For(1).Totals(); got.TotalItems != 1 {
		t.Errorf("user 1 cart lost its line: %+v", got)
	}

	s.Drop(1)
	if got := s.For(1).Totals(); got.TotalItems != 0 {
		t.Errorf("dropped cart not empty: %+v", got)
	}
}
