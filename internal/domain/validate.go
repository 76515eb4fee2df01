package domain

import (
	"strings"

	"tourbooking/internal/domain/models"
	"tourbooking/internal/utils"
)

// ValidateSelection runs the booking preconditions in order; the first
// failure wins. It returns nil when the selection can be promoted to a
// booking line.
//
// Check order: travel date present and not in the past, then time slot for
// hourly options that define slots, then pickup location when a transfer
// needs one. Guest counts are not checked here; ValidateCounts covers the
// structural invariants separately.
func ValidateSelection(opt models.TourOption, sel models.Selection) error {
	date := strings.TrimSpace(sel.SelectedDate)
	if date == "" {
		return ValidationError{Code: CodeDateRequired, Field: "selected_date", Msg: "travel date is required"}
	}
	day, err := utils.ParseDate(date)
	if err != nil {
		return ValidationError{Code: CodeDateRequired, Field: "selected_date", Msg: "travel date is invalid", Err: err}
	}
	if utils.BeforeToday(day) {
		return ValidationError{Code: CodeDateInPast, Field: "selected_date", Msg: "travel date cannot be in the past"}
	}

	if opt.RequiresTimeSlot() && strings.TrimSpace(sel.SelectedTimeSlot) == "" {
		return ValidationError{Code: CodeTimeSlotRequired, Field: "selected_time_slot", Msg: "a time slot must be chosen"}
	}

	if sel.PickupRequired(opt) && strings.TrimSpace(sel.PickupLocation) == "" {
		return ValidationError{Code: CodePickupRequired, Field: "pickup_location", Msg: "pickup location is required for the selected transfer"}
	}

	return nil
}

// ValidateCounts re-checks the guest invariants the storefront widgets are
// supposed to maintain. The UI clamps these already; this guards the server
// path against a caller that bypasses it.
func ValidateCounts(opt models.TourOption, sel models.Selection) error {
	if opt.PricingType == models.PricingPerGroup {
		if sel.Guests < 1 {
			return ValidationError{Field: "guests", Msg: "at least one guest is required"}
		}
		if min := models.MinUnits(sel.Guests, opt.CapacityPerUnit); sel.Units < min {
			return ValidationError{Field: "units", Msg: "not enough units for the guest count"}
		}
		return nil
	}

	if sel.Adults < 1 {
		return ValidationError{Field: "adults", Msg: "at least one adult is required"}
	}
	if sel.Children < 0 || sel.Infants < 0 {
		return ValidationError{Field: "guests", Msg: "guest counts cannot be negative"}
	}
	return nil
}
