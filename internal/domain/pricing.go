package domain

import (
	"tourbooking/internal/domain/models"
	"tourbooking/internal/utils"
)

// ComputeTotal prices an option against a selection. Pure function: the same
// option and selection always produce the same amount.
//
// Group mode charges per purchased unit; person mode charges per participant
// tier. Active extras are added on top. The result is rounded to 2 decimal
// places and never negative.
func ComputeTotal(opt models.TourOption, sel models.Selection) float64 {
	var base float64
	if opt.PricingType == models.PricingPerGroup {
		base = float64(sel.Units) * opt.GroupPrice
	} else {
		base = float64(sel.Adults)*opt.AdultPrice +
			float64(sel.Children)*opt.ChildPrice +
			float64(sel.Infants)*opt.InfantPrice
	}

	total := base + ExtrasTotal(opt, sel)
	if total < 0 {
		total = 0
	}
	return utils.RoundMoney(total)
}

// ExtrasTotal sums the active add-on lines for a selection.
func ExtrasTotal(opt models.TourOption, sel models.Selection) float64 {
	var sum float64
	for _, line := range sel.ExtraQuantities.Breakdown(opt.ExtraServices) {
		sum += line.LineTotal
	}
	return sum
}
