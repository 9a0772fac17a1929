package core

import (
	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/catalog"
)

// CatalogReader is the lookup surface the pricing engine depends on.
// Implementations must be synchronous and safe for concurrent reads;
// the engine assumes already-resolved in-memory data.
type CatalogReader interface {
	DestinationByID(id string) (*catalog.Destination, bool)
	PackageByID(id string) (*catalog.Package, bool)
	HotelByID(id string) (*catalog.Hotel, bool)

	// HotelsByTier returns hotels in catalog order: cheapest first.
	HotelsByTier(destinationID string, tier catalog.Tier) []*catalog.Hotel
}
