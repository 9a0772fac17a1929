package catalog

// Tier is the price/quality bracket a hotel belongs to.
type Tier string

const (
	TierVeryAffordable Tier = "very-affordable"
	TierAffordable     Tier = "affordable"
	TierPremium        Tier = "premium"
)

// ValidTier reports whether t is one of the three known hotel tiers.
func ValidTier(t Tier) bool {
	switch t {
	case TierVeryAffordable, TierAffordable, TierPremium:
		return true
	}
	return false
}

type Destination struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Country       string `json:"country"`
	International bool   `json:"international"`
}

// KidsPriceTier prices children inside an age band. First match wins.
type KidsPriceTier struct {
	MinAge int `json:"min_age"`
	MaxAge int `json:"max_age"`
	Price  int `json:"price"`
}

type Package struct {
	ID            string `json:"id"`
	DestinationID string `json:"destination_id"`
	Name          string `json:"name"`

	// BasePrice is per adult, in whole rand.
	BasePrice int `json:"base_price"`

	// KidsPrice is the flat per-child fallback when no tier matches.
	KidsPrice      *int            `json:"kids_price,omitempty"`
	KidsPriceTiers []KidsPriceTier `json:"kids_price_tiers,omitempty"`

	ActivitiesIncluded []string `json:"activities_included"`

	// Duration is display text only; nights come from the stay dates.
	Duration string `json:"duration"`
}

type Hotel struct {
	ID            string `json:"id"`
	DestinationID string `json:"destination_id"`
	Name          string `json:"name"`

	// PricePerNight is per room, per night, in whole rand.
	PricePerNight     int  `json:"price_per_night"`
	Type              Tier `json:"type"`
	IncludesBreakfast bool `json:"includes_breakfast"`
}

type Activity struct {
	ID            string `json:"id"`
	DestinationID string `json:"destination_id"`
	Name          string `json:"name"`
	Price         int    `json:"price"`
}

// Snapshot is one full catalog load. Hotels are expected in ascending
// price-per-night order within each destination+tier; the Store preserves
// this order, so "first hotel" means "cheapest hotel".
type Snapshot struct {
	Destinations []Destination `json:"destinations"`
	Packages     []Package     `json:"packages"`
	Hotels       []Hotel       `json:"hotels"`
	Activities   []Activity    `json:"activities"`
}
