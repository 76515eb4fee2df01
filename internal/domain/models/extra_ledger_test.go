package models

import "testing"

func TestExtraLedgerIncrementDecrement(t *testing.T) {
	l := ExtraLedger{}

	l.Increment(0)
	l.Increment(0)
	l.Increment(2)
	if l.Quantity(0) != 2 || l.Quantity(2) != 1 {
		t.Fatalf("unexpected quantities: %v", l)
	}

	l.Decrement(0)
	if l.Quantity(0) != 1 {
		t.Fatalf("expected 1, got %d", l.Quantity(0))
	}

	// reaching zero removes the entry entirely
	l.Decrement(0)
	if _, ok := l[0]; ok {
		t.Fatalf("entry should be deleted at zero, got %v", l)
	}

	// decrementing an absent entry is a no-op
	l.Decrement(5)
	if _, ok := l[5]; ok {
		t.Fatalf("decrement must not create entries")
	}
}

func TestExtraLedgerBreakdownCatalogOrder(t *testing.T) {
	catalog := []ExtraService{
		{Name: "Private Transfer", UnitPrice: 80},
		{Name: "Photography", UnitPrice: 150},
		{Name: "Lunch", UnitPrice: 25},
	}
	l := ExtraLedger{2: 1, 1: 2}

	lines := l.Breakdown(catalog)
	if len(lines) != 2 {
		t.Fatalf("expected 2 active lines, got %d", len(lines))
	}
	if lines[0].Name != "Photography" || lines[1].Name != "Lunch" {
		t.Fatalf("breakdown not in catalog order: %+v", lines)
	}
	if lines[0].LineTotal != 300 || lines[1].LineTotal != 25 {
		t.Fatalf("line totals wrong: %+v", lines)
	}
}

func TestExtraLedgerBreakdownIgnoresUnknownIndexes(t *testing.T) {
	catalog := []ExtraService{{Name: "Lunch", UnitPrice: 25}}
	l := ExtraLedger{0: 1, 7: 3}

	lines := l.Breakdown(catalog)
	if len(lines) != 1 || lines[0].Name != "Lunch" {
		t.Fatalf("indexes outside the catalog must be ignored: %+v", lines)
	}
}

func TestNewSelectionDefaults(t *testing.T) {
	person := NewSelection(TourOption{PricingType: PricingPerPerson})
	if person.Adults != 1 || person.Guests != 0 || person.Units != 0 {
		t.Fatalf("unexpected person defaults: %+v", person)
	}

	group := NewSelection(TourOption{PricingType: PricingPerGroup})
	if group.Guests != 1 || group.Units != 1 || group.Adults != 0 {
		t.Fatalf("unexpected group defaults: %+v", group)
	}
}
