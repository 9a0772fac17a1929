package quote

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/catalog"
	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/pricing"
)

const dateLayout = "2006-01-02"

// ErrNoQuote means the catalog has nothing for the request: unknown package,
// no hotels for the destination+tier, or a stay of under one night.
var ErrNoQuote = errors.New("no quotes available")

type Service struct {
	engine *pricing.Engine
}

func NewService(engine *pricing.Engine) *Service {
	return &Service{engine: engine}
}

// --------------------------------------------------
// Instant quote (single hotel, exact totals)
// --------------------------------------------------
func (s *Service) InstantQuote(params *QuoteParams) (*QuoteView, error) {
	req, err := buildRequest(params)
	if err != nil {
		return nil, err
	}

	result := s.engine.CalculateQuote(req)
	if result == nil {
		return nil, ErrNoQuote
	}

	return newView(result, pricing.StandardFees{}.Name(), false), nil
}

// --------------------------------------------------
// All hotels of a tier (group/bulk flow, cheapest first)
// --------------------------------------------------
func (s *Service) QuoteAllHotels(params *QuoteParams) ([]*QuoteView, error) {
	req, err := buildRequest(params)
	if err != nil {
		return nil, err
	}

	fees, err := feePolicy(params.Policy)
	if err != nil {
		return nil, err
	}

	results := s.engine.CalculateAllQuotesWithPolicy(req, fees)

	views := make([]*QuoteView, 0, len(results))
	for _, result := range results {
		views = append(views, newView(result, fees.Name(), params.RoundTo10))
	}
	return views, nil
}

// --------------------------------------------------
// Request building
// --------------------------------------------------
func buildRequest(params *QuoteParams) (*pricing.QuoteRequest, error) {
	checkIn, err := time.Parse(dateLayout, params.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("invalid check_in date: %w", err)
	}
	checkOut, err := time.Parse(dateLayout, params.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("invalid check_out date: %w", err)
	}

	tier := catalog.Tier(params.HotelType)
	if !catalog.ValidTier(tier) {
		return nil, fmt.Errorf("invalid hotel_type %q", params.HotelType)
	}

	return &pricing.QuoteRequest{
		DestinationID:   params.DestinationID,
		PackageID:       params.PackageID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          params.Adults,
		Children:        params.Children,
		ChildrenAges:    params.ChildrenAges,
		Rooms:           params.Rooms,
		HotelType:       tier,
		SelectedHotelID: params.SelectedHotelID,
	}, nil
}

func feePolicy(name string) (pricing.FeePolicy, error) {
	switch name {
	case "", "standard":
		return pricing.StandardFees{}, nil
	case "legacy-group":
		return pricing.LegacyGroupFees{}, nil
	}
	return nil, fmt.Errorf("unknown fee policy %q", name)
}

func newView(result *pricing.QuoteResult, policy string, roundTo10 bool) *QuoteView {
	display := result.TotalForGroup
	if roundTo10 {
		display = pricing.RoundToNearest10(display)
	}
	return &QuoteView{
		Reference:    uuid.New().String(),
		Policy:       policy,
		QuoteResult:  result,
		DisplayTotal: display,
	}
}
