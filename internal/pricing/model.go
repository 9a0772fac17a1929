package pricing

import (
	"time"

	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/catalog"
)

// QuoteRequest is the immutable input for one calculation. Built fresh per
// user action and never mutated by the engine.
type QuoteRequest struct {
	DestinationID string
	PackageID     string

	CheckIn  time.Time
	CheckOut time.Time

	Adults       int
	Children     int
	ChildrenAges []int
	Rooms        int

	HotelType Tier

	// SelectedHotelID is optional; when empty (or unknown) the first hotel
	// of the destination+tier list is used, which is the cheapest one.
	SelectedHotelID string
}

// Tier aliases the catalog tier so engine callers don't need two imports.
type Tier = catalog.Tier

// LineItem is one display row of the cost breakdown. The amounts always sum
// to TotalForGroup exactly.
type LineItem struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

// Breakdown labels, in their fixed presentation order.
const (
	LabelAccommodation = "Accommodation"
	LabelAdultPackage  = "Adult package cost"
	LabelChildPackage  = "Child package cost"
	LabelChildOnceFees = "Child once-off fees"
	LabelServiceFees   = "Service fees"
)

// QuoteResult is the immutable snapshot of one calculation.
type QuoteResult struct {
	DestinationName string    `json:"destination_name"`
	PackageName     string    `json:"package_name"`
	HotelID         string    `json:"hotel_id"`
	HotelName       string    `json:"hotel_name"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Nights          int       `json:"nights"`
	Adults          int       `json:"adults"`
	Children        int       `json:"children"`
	Rooms           int       `json:"rooms"`

	AccommodationCost   int `json:"accommodation_cost"`
	PackageBaseCost     int `json:"package_base_cost"`
	ChildrenPackageCost int `json:"children_package_cost"`
	ChildrenOnceFees    int `json:"children_once_fees"`
	TotalServiceFees    int `json:"total_service_fees"`

	// PackageCost = PackageBaseCost + ChildrenPackageCost + ChildrenOnceFees.
	PackageCost int `json:"package_cost"`

	TotalForGroup  int `json:"total_for_group"`
	TotalPerPerson int `json:"total_per_person"`

	Breakdown []LineItem `json:"breakdown"`
}
