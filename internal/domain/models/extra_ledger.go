package models

// ExtraLedger tracks chosen add-on quantities keyed by catalog index.
// Entries are removed (not zeroed) when a quantity drops to 0, so iteration
// only ever sees active extras.
type ExtraLedger map[int]int

// Increment bumps the quantity for a catalog index. No upper bound.
func (l ExtraLedger) Increment(index int) {
	if index < 0 {
		return
	}
	l[index]++
}

// Decrement lowers the quantity, removing the entry at zero.
func (l ExtraLedger) Decrement(index int) {
	qty, ok := l[index]
	if !ok {
		return
	}
	qty--
	if qty <= 0 {
		delete(l, index)
		return
	}
	l[index] = qty
}

// Quantity returns the active quantity for a catalog index (0 when absent).
func (l ExtraLedger) Quantity(index int) int {
	return l[index]
}

// ExtraLine is one priced add-on row of a booking breakdown.
type ExtraLine struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// Breakdown lists active extras in catalog order with their line totals.
// Indexes outside the catalog are ignored.
func (l ExtraLedger) Breakdown(catalog []ExtraService) []ExtraLine {
	out := []ExtraLine{}
	for i, svc := range catalog {
		qty := l[i]
		if qty <= 0 {
			continue
		}
		out = append(out, ExtraLine{
			Name:      svc.Name,
			UnitPrice: svc.UnitPrice,
			Quantity:  qty,
			LineTotal: svc.UnitPrice * float64(qty),
		})
	}
	return out
}
