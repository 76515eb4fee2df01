package models

// Transfer type labels attached to a booking line.
const (
	TransferPrivate = "Private Transfer"
	TransferFree    = "Free Transfer"
	TransferNone    = "-"
)

// BookingLine is the immutable output of a successful Add to Cart / Book Now
// action. The guest breakdown for the inactive pricing mode is zeroed so the
// downstream booking record keeps a uniform shape.
type BookingLine struct {
	ID          int64  `json:"id,omitempty"`
	PackageID   int64  `json:"package_id"`
	OptionID    int64  `json:"option_id"`
	OptionTitle string `json:"option_title"`

	PricingType PricingType `json:"pricing_type"`

	TravelDate string `json:"travel_date"`
	TimeSlot   string `json:"time_slot,omitempty"`

	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
	Guests   int `json:"guests"`
	Units    int `json:"units"`

	TransferType   string `json:"transfer_type"`
	PickupLocation string `json:"pickup_location,omitempty"`

	ExtraServicesBreakdown []ExtraLine `json:"extra_services_breakdown"`

	TotalPrice float64 `json:"total_price"`
}
