package pricing

import (
	"math"
	"sort"
	"time"

	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/catalog"
	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/core"
)

// paddedAge fills in missing entries when ChildrenAges is shorter than
// Children. Deliberate leniency carried over from the forms: callers
// sometimes submit a count before every age is picked.
const paddedAge = 5

// Engine computes quote breakdowns from the read-only catalog.
// PURE business logic: no I/O, no mutation, safe for concurrent callers.
type Engine struct {
	catalog core.CatalogReader
}

func NewEngine(catalog core.CatalogReader) *Engine {
	return &Engine{catalog: catalog}
}

// CalculateQuote prices one package+hotel+party combination with the
// standard fee tariff. Returns nil when no quote is available: unknown
// package, no hotels for the destination+tier, or a stay of under one night.
func (e *Engine) CalculateQuote(req *QuoteRequest) *QuoteResult {
	return e.CalculateQuoteWithPolicy(req, StandardFees{})
}

// CalculateQuoteWithPolicy is CalculateQuote with an explicit fee tariff.
func (e *Engine) CalculateQuoteWithPolicy(req *QuoteRequest, fees FeePolicy) *QuoteResult {
	if req == nil || req.Rooms < 1 || req.Adults < 0 || req.Children < 0 {
		return nil
	}

	nights := Nights(req.CheckIn, req.CheckOut)
	if nights < 1 {
		return nil
	}

	dest, ok := e.catalog.DestinationByID(req.DestinationID)
	if !ok {
		return nil
	}

	pkg, ok := e.catalog.PackageByID(req.PackageID)
	if !ok || pkg.DestinationID != req.DestinationID {
		return nil
	}

	hotel := e.resolveHotel(req)
	if hotel == nil {
		return nil
	}

	ages := normalizeAges(req.ChildrenAges, req.Children)

	accommodationCost := hotel.PricePerNight * req.Rooms * nights
	packageBaseCost := pkg.BasePrice * req.Adults

	childrenPackageCost := 0
	childrenOnceFees := 0
	billableChildren := 0
	for _, age := range ages {
		if !billable(age) {
			continue
		}
		billableChildren++
		childrenPackageCost += childPackagePrice(pkg, age)
		childrenOnceFees += fees.ChildOnceFee(age, req.Adults, req.Children)
	}

	totalServiceFees := fees.AdultServiceFees(req.Adults, req.Children)

	totalForGroup := accommodationCost + packageBaseCost +
		childrenPackageCost + childrenOnceFees + totalServiceFees

	totalPerPerson := 0
	if payers := req.Adults + billableChildren; payers > 0 {
		totalPerPerson = int(math.Round(float64(totalForGroup) / float64(payers)))
	}

	breakdown := []LineItem{
		{Label: LabelAccommodation, Amount: accommodationCost},
		{Label: LabelAdultPackage, Amount: packageBaseCost},
	}
	if billableChildren > 0 {
		breakdown = append(breakdown, LineItem{Label: LabelChildPackage, Amount: childrenPackageCost})
	}
	if childrenOnceFees > 0 {
		breakdown = append(breakdown, LineItem{Label: LabelChildOnceFees, Amount: childrenOnceFees})
	}
	breakdown = append(breakdown, LineItem{Label: LabelServiceFees, Amount: totalServiceFees})

	return &QuoteResult{
		DestinationName: dest.Name,
		PackageName:     pkg.Name,
		HotelID:         hotel.ID,
		HotelName:       hotelDisplayName(hotel),
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Nights:          nights,
		Adults:          req.Adults,
		Children:        req.Children,
		Rooms:           req.Rooms,

		AccommodationCost:   accommodationCost,
		PackageBaseCost:     packageBaseCost,
		ChildrenPackageCost: childrenPackageCost,
		ChildrenOnceFees:    childrenOnceFees,
		TotalServiceFees:    totalServiceFees,
		PackageCost:         packageBaseCost + childrenPackageCost + childrenOnceFees,

		TotalForGroup:  totalForGroup,
		TotalPerPerson: totalPerPerson,

		Breakdown: breakdown,
	}
}

// CalculateAllQuotes prices the request against every hotel of the
// destination+tier and returns the results cheapest first. Always returns a
// slice, never nil.
func (e *Engine) CalculateAllQuotes(req *QuoteRequest) []*QuoteResult {
	return e.CalculateAllQuotesWithPolicy(req, StandardFees{})
}

// CalculateAllQuotesWithPolicy is CalculateAllQuotes with an explicit tariff.
func (e *Engine) CalculateAllQuotesWithPolicy(req *QuoteRequest, fees FeePolicy) []*QuoteResult {
	results := []*QuoteResult{}
	if req == nil {
		return results
	}

	for _, hotel := range e.catalog.HotelsByTier(req.DestinationID, req.HotelType) {
		r := *req
		r.SelectedHotelID = hotel.ID
		if result := e.CalculateQuoteWithPolicy(&r, fees); result != nil {
			results = append(results, result)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalForGroup < results[j].TotalForGroup
	})

	return results
}

// --------------------------------------------------
// Resolution helpers
// --------------------------------------------------

// resolveHotel picks the selected hotel when it exists in the requested
// destination+tier; otherwise the first (cheapest) hotel of that list.
func (e *Engine) resolveHotel(req *QuoteRequest) *catalog.Hotel {
	hotels := e.catalog.HotelsByTier(req.DestinationID, req.HotelType)
	if len(hotels) == 0 {
		return nil
	}

	if req.SelectedHotelID != "" {
		for _, h := range hotels {
			if h.ID == req.SelectedHotelID {
				return h
			}
		}
	}

	return hotels[0]
}

// Nights derives the stay length: ceil of the day difference.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// childPackagePrice resolves one billable child's package cost:
// matching age tier first, then the flat kids price, then half the adult
// base price.
func childPackagePrice(pkg *catalog.Package, age int) int {
	for _, tier := range pkg.KidsPriceTiers {
		if age >= tier.MinAge && age <= tier.MaxAge {
			return tier.Price
		}
	}
	if pkg.KidsPrice != nil {
		return *pkg.KidsPrice
	}
	return int(math.Round(float64(pkg.BasePrice) * 0.5))
}

// normalizeAges pads or truncates the ages list to the declared child count.
func normalizeAges(ages []int, children int) []int {
	if children <= 0 {
		return nil
	}
	out := make([]int, children)
	for i := range out {
		if i < len(ages) {
			out[i] = ages[i]
		} else {
			out[i] = paddedAge
		}
	}
	return out
}

func hotelDisplayName(h *catalog.Hotel) string {
	if h.IncludesBreakfast {
		return h.Name + " (includes breakfast)"
	}
	return h.Name
}
