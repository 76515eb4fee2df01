package models

// Selection is the mutable buyer input for one TourOption. It lives for a
// single storefront interaction; a successful booking action snapshots it
// into a BookingLine and discards it.
type Selection struct {
	// person mode
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`

	// group mode
	Guests int `json:"guests"`
	Units  int `json:"units"`

	SelectedTimeSlot string `json:"selected_time_slot"`
	SelectedDate     string `json:"selected_date"` // YYYY-MM-DD

	ExtraQuantities ExtraLedger `json:"extra_quantities"`

	PickupLocation string `json:"pickup_location"`
	PickupOptIn    bool   `json:"pickup_opt_in"`
}

// NewSelection returns the default selection for an option: one adult in
// person mode, or one guest in one unit for group mode.
func NewSelection(opt TourOption) Selection {
	sel := Selection{ExtraQuantities: ExtraLedger{}}
	if opt.PricingType == PricingPerGroup {
		sel.Guests = 1
		sel.Units = 1
	} else {
		sel.Adults = 1
	}
	return sel
}

// MinUnits is the smallest unit count that can seat guests, i.e.
// ceil(guests / capacityPerUnit). Zero capacity means one unit fits everyone.
func MinUnits(guests, capacityPerUnit int) int {
	if guests <= 0 {
		guests = 1
	}
	if capacityPerUnit <= 0 {
		return 1
	}
	return (guests + capacityPerUnit - 1) / capacityPerUnit
}

// PrivateTransferSelected reports whether a paid Private Transfer extra is in
// the selection with quantity > 0. Name match is exact.
func (s Selection) PrivateTransferSelected(opt TourOption) bool {
	for idx, qty := range s.ExtraQuantities {
		if qty <= 0 {
			continue
		}
		if idx >= 0 && idx < len(opt.ExtraServices) && opt.ExtraServices[idx].Name == PrivateTransferName {
			return true
		}
	}
	return false
}

// PickupRequired reports whether this selection needs a pickup location:
// a paid Private Transfer is selected, or the option includes free pickup
// and the buyer opted in.
func (s Selection) PickupRequired(opt TourOption) bool {
	if s.PrivateTransferSelected(opt) {
		return true
	}
	return opt.PickupIncludedFree && s.PickupOptIn
}
