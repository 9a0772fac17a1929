package quote

import (
	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/pricing"
)

// QuoteParams is the request body both quote endpoints accept.
// Dates are YYYY-MM-DD.
type QuoteParams struct {
	DestinationID string `json:"destination_id" binding:"required"`
	PackageID     string `json:"package_id" binding:"required"`

	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`

	Adults       int   `json:"adults" binding:"min=0"`
	Children     int   `json:"children" binding:"min=0"`
	ChildrenAges []int `json:"children_ages"`
	Rooms        int   `json:"rooms" binding:"required,min=1"`

	HotelType       string `json:"hotel_type" binding:"required"`
	SelectedHotelID string `json:"selected_hotel_id"`

	// RoundTo10 rounds DisplayTotal to the nearest 10 rand. Honored only by
	// the all-hotels (group/bulk) flow; instant quotes are always exact.
	RoundTo10 bool `json:"round_to_10"`

	// Policy selects the fee tariff for the all-hotels flow:
	// "standard" (default) or "legacy-group".
	Policy string `json:"policy"`
}

// QuoteView is a QuoteResult ready for rendering or export: a shareable
// reference, the tariff that produced it, and the display total (exact, or
// rounded to 10 when the caller asked for it). The underlying breakdown is
// carried verbatim.
type QuoteView struct {
	Reference string `json:"reference"`
	Policy    string `json:"policy"`

	*pricing.QuoteResult

	DisplayTotal int `json:"display_total"`
}
