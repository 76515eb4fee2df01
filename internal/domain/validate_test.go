package domain

import (
	"testing"
	"time"

	"tourbooking/internal/domain/models"
	"tourbooking/internal/utils"
)

func futureDate() string {
	return utils.FormatDate(time.Now().AddDate(0, 0, 7))
}

func hourlyOption() models.TourOption {
	return models.TourOption{
		PricingType:  models.PricingPerPerson,
		AdultPrice:   100,
		DurationType: models.DurationHours,
		TimeSlots:    []string{"09:00", "14:00"},
	}
}

func TestValidateSelectionDateRequired(t *testing.T) {
	sel := models.Selection{Adults: 1, ExtraQuantities: models.ExtraLedger{}}

	err := ValidateSelection(hourlyOption(), sel)
	if ValidationCode(err) != CodeDateRequired {
		t.Fatalf("expected %s, got %v", CodeDateRequired, err)
	}
}

func TestValidateSelectionDateBeforeTimeSlot(t *testing.T) {
	// missing date AND missing slot must fail on the date first
	sel := models.Selection{Adults: 1, ExtraQuantities: models.ExtraLedger{}}

	err := ValidateSelection(hourlyOption(), sel)
	if ValidationCode(err) == CodeTimeSlotRequired {
		t.Fatalf("check order broken: time slot reported before date")
	}
	if ValidationCode(err) != CodeDateRequired {
		t.Fatalf("expected %s, got %v", CodeDateRequired, err)
	}
}

func TestValidateSelectionDateInPast(t *testing.T) {
	sel := models.Selection{
		Adults:          1,
		SelectedDate:    utils.FormatDate(time.Now().AddDate(0, 0, -1)),
		ExtraQuantities: models.ExtraLedger{},
	}

	err := ValidateSelection(hourlyOption(), sel)
	if ValidationCode(err) != CodeDateInPast {
		t.Fatalf("expected %s, got %v", CodeDateInPast, err)
	}
}

func TestValidateSelectionTodayIsAllowed(t *testing.T) {
	opt := hourlyOption()
	sel := models.Selection{
		Adults:           1,
		SelectedDate:     utils.FormatDate(time.Now()),
		SelectedTimeSlot: "09:00",
		ExtraQuantities:  models.ExtraLedger{},
	}

	if err := ValidateSelection(opt, sel); err != nil {
		t.Fatalf("same-day booking should pass, got %v", err)
	}
}

func TestValidateSelectionTimeSlotRequired(t *testing.T) {
	sel := models.Selection{
		Adults:          1,
		SelectedDate:    futureDate(),
		ExtraQuantities: models.ExtraLedger{},
	}

	err := ValidateSelection(hourlyOption(), sel)
	if ValidationCode(err) != CodeTimeSlotRequired {
		t.Fatalf("expected %s, got %v", CodeTimeSlotRequired, err)
	}
}

func TestValidateSelectionNoSlotNeededForDayTours(t *testing.T) {
	opt := models.TourOption{
		PricingType:  models.PricingPerPerson,
		AdultPrice:   100,
		DurationType: models.DurationDays,
	}
	sel := models.Selection{Adults: 1, SelectedDate: futureDate(), ExtraQuantities: models.ExtraLedger{}}

	if err := ValidateSelection(opt, sel); err != nil {
		t.Fatalf("day tour should not demand a time slot, got %v", err)
	}
}

func TestValidateSelectionPickupRequiredForPrivateTransfer(t *testing.T) {
	opt := models.TourOption{
		PricingType:   models.PricingPerPerson,
		AdultPrice:    100,
		ExtraServices: []models.ExtraService{{Name: models.PrivateTransferName, UnitPrice: 50}},
	}
	sel := models.Selection{
		Adults:          1,
		SelectedDate:    futureDate(),
		ExtraQuantities: models.ExtraLedger{0: 1},
	}

	err := ValidateSelection(opt, sel)
	if ValidationCode(err) != CodePickupRequired {
		t.Fatalf("expected %s, got %v", CodePickupRequired, err)
	}

	sel.PickupLocation = "Hotel X"
	if err := ValidateSelection(opt, sel); err != nil {
		t.Fatalf("expected ok with pickup location, got %v", err)
	}
}

func TestValidateSelectionPickupRequiredForFreeOptIn(t *testing.T) {
	opt := models.TourOption{
		PricingType:        models.PricingPerPerson,
		AdultPrice:         100,
		PickupIncludedFree: true,
	}
	sel := models.Selection{
		Adults:          1,
		SelectedDate:    futureDate(),
		PickupOptIn:     true,
		PickupLocation:  "   ",
		ExtraQuantities: models.ExtraLedger{},
	}

	err := ValidateSelection(opt, sel)
	if ValidationCode(err) != CodePickupRequired {
		t.Fatalf("whitespace pickup should fail, got %v", err)
	}
}

func TestValidateSelectionOtherExtrasDontRequirePickup(t *testing.T) {
	opt := models.TourOption{
		PricingType:   models.PricingPerPerson,
		AdultPrice:    100,
		ExtraServices: []models.ExtraService{{Name: "Photography", UnitPrice: 150}},
	}
	sel := models.Selection{
		Adults:          1,
		SelectedDate:    futureDate(),
		ExtraQuantities: models.ExtraLedger{0: 2},
	}

	if err := ValidateSelection(opt, sel); err != nil {
		t.Fatalf("non-transfer extra should not require pickup, got %v", err)
	}
}

func TestValidateCountsPersonMode(t *testing.T) {
	opt := models.TourOption{PricingType: models.PricingPerPerson, AdultPrice: 10}

	if err := ValidateCounts(opt, models.Selection{Adults: 0}); err == nil {
		t.Fatalf("expected rejection for adults=0")
	}
	if err := ValidateCounts(opt, models.Selection{Adults: 1, Children: -1}); err == nil {
		t.Fatalf("expected rejection for negative children")
	}
	if err := ValidateCounts(opt, models.Selection{Adults: 1}); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
}

func TestValidateCountsGroupMode(t *testing.T) {
	opt := models.TourOption{PricingType: models.PricingPerGroup, GroupPrice: 600, CapacityPerUnit: 4}

	// 10 guests need at least 3 units
	if err := ValidateCounts(opt, models.Selection{Guests: 10, Units: 2}); err == nil {
		t.Fatalf("expected rejection for units below minimum")
	}
	if err := ValidateCounts(opt, models.Selection{Guests: 10, Units: 3}); err != nil {
		t.Fatalf("expected ok at minimum units, got %v", err)
	}
	if err := ValidateCounts(opt, models.Selection{Guests: 10, Units: 5}); err != nil {
		t.Fatalf("units above minimum are allowed, got %v", err)
	}
}

func TestMinUnits(t *testing.T) {
	cases := []struct {
		guests, capacity, want int
	}{
		{10, 4, 3},
		{8, 4, 2},
		{1, 4, 1},
		{5, 1, 5},
		{3, 0, 1}, // zero capacity falls back to one unit
	}
	for _, tc := range cases {
		if got := models.MinUnits(tc.guests, tc.capacity); got != tc.want {
			t.Fatalf("MinUnits(%d,%d) = %d, want %d", tc.guests, tc.capacity, got, tc.want)
		}
	}
}
