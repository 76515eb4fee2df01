package models

// DurationType distinguishes hourly options (with time slots) from multi-day ones.
type DurationType string

const (
	DurationHours DurationType = "hours"
	DurationDays  DurationType = "days"
)

// PricingType selects which price fields of a TourOption are authoritative.
type PricingType string

const (
	PricingPerPerson PricingType = "person"
	PricingPerGroup  PricingType = "group"
)

// PrivateTransferName is the catalog name of the paid pickup extra. Selecting
// it (quantity > 0) makes a pickup location mandatory.
const PrivateTransferName = "Private Transfer"

// ExtraService is an optional add-on with a per-unit price.
type ExtraService struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

// TourOption is one purchasable configuration of a package
// (e.g. "Group Tour, 4 Hours"). Exactly one pricing branch is authoritative,
// selected by PricingType; the other branch's fields are display noise.
type TourOption struct {
	ID        int64  `json:"id"`
	PackageID int64  `json:"package_id"`
	Title     string `json:"title"`

	DurationLabel string       `json:"duration_label"`
	DurationType  DurationType `json:"duration_type"`

	PricingType PricingType `json:"pricing_type"`

	// person pricing
	AdultPrice     float64 `json:"adult_price"`
	ChildPrice     float64 `json:"child_price"`
	InfantPrice    float64 `json:"infant_price"`
	AdultAgeLabel  string  `json:"adult_age_label,omitempty"`
	ChildAgeLabel  string  `json:"child_age_label,omitempty"`
	InfantAgeLabel string  `json:"infant_age_label,omitempty"`

	// group pricing
	GroupPrice      float64 `json:"group_price"`
	CapacityPerUnit int     `json:"capacity_per_unit"`

	TimeSlots     []string       `json:"time_slots,omitempty"`
	ExtraServices []ExtraService `json:"extra_services,omitempty"`

	CancellationPolicy string `json:"cancellation_policy,omitempty"`
	PickupIncludedFree bool   `json:"pickup_included_free"`
}

// RequiresTimeSlot reports whether a buyer must pick a slot before booking.
func (o TourOption) RequiresTimeSlot() bool {
	return o.DurationType == DurationHours && len(o.TimeSlots) > 0
}

// HasTimeSlot reports whether slot is one of the option's configured slots.
func (o TourOption) HasTimeSlot(slot string) bool {
	for _, s := range o.TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
