package domain

import (
	"strings"

	"tourbooking/internal/domain/models"
)

// TransferType classifies the pickup arrangement of a selection. A paid
// Private Transfer extra takes precedence over the free pickup opt-in.
func TransferType(opt models.TourOption, sel models.Selection) string {
	if sel.PrivateTransferSelected(opt) {
		return models.TransferPrivate
	}
	if opt.PickupIncludedFree && sel.PickupOptIn {
		return models.TransferFree
	}
	return models.TransferNone
}

// ComposeBookingLine turns a validated selection into an immutable booking
// line. The inactive pricing mode's guest fields are zeroed so every line has
// the same shape regardless of mode.
func ComposeBookingLine(opt models.TourOption, sel models.Selection) (models.BookingLine, error) {
	if err := ValidateSelection(opt, sel); err != nil {
		return models.BookingLine{}, err
	}
	if err := ValidateCounts(opt, sel); err != nil {
		return models.BookingLine{}, err
	}

	line := models.BookingLine{
		PackageID:   opt.PackageID,
		OptionID:    opt.ID,
		OptionTitle: opt.Title,
		PricingType: opt.PricingType,

		TravelDate: strings.TrimSpace(sel.SelectedDate),
		TimeSlot:   strings.TrimSpace(sel.SelectedTimeSlot),

		TransferType:   TransferType(opt, sel),
		PickupLocation: strings.TrimSpace(sel.PickupLocation),

		ExtraServicesBreakdown: sel.ExtraQuantities.Breakdown(opt.ExtraServices),

		TotalPrice: ComputeTotal(opt, sel),
	}

	if opt.PricingType == models.PricingPerGroup {
		line.Guests = sel.Guests
		line.Units = sel.Units
	} else {
		line.Adults = sel.Adults
		line.Children = sel.Children
		line.Infants = sel.Infants
	}

	return line, nil
}
