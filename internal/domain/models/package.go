package models

// Category groups packages on the storefront ("Desert Tours", "City Tours").
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// TravelPackage is a bookable product page holding one or more tour options.
type TravelPackage struct {
	ID          int64  `json:"id"`
	CategoryID  int64  `json:"category_id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Active      bool   `json:"active"`

	Options []TourOption `json:"options,omitempty"`
}
