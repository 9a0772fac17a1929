package pricing

import (
	"reflect"
	"testing"
	"time"

	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/catalog"
)

// --------------------------------------------------
// Test catalog
// --------------------------------------------------

func testStore() *catalog.Store {
	kidsPrice := 600
	fallbackKids := 700

	return catalog.NewStore(&catalog.Snapshot{
		Destinations: []catalog.Destination{
			{ID: "durban", Name: "Durban", Country: "South Africa"},
			{ID: "cape-town", Name: "Cape Town", Country: "South Africa"},
		},
		Packages: []catalog.Package{
			{
				ID:            "beach-break",
				DestinationID: "durban",
				Name:          "Beach Break",
				BasePrice:     1800,
				KidsPrice:     &kidsPrice,
			},
			{
				ID:            "family-fun",
				DestinationID: "durban",
				Name:          "Family Fun",
				BasePrice:     2400,
				KidsPrice:     &fallbackKids,
				KidsPriceTiers: []catalog.KidsPriceTier{
					{MinAge: 3, MaxAge: 7, Price: 800},
				},
			},
			{
				ID:            "no-kids-pricing",
				DestinationID: "durban",
				Name:          "No Kids Pricing",
				BasePrice:     2000,
			},
		},
		Hotels: []catalog.Hotel{
			// affordable tier listed cheapest first, as the catalog guarantees
			{ID: "h-cheap", DestinationID: "durban", Name: "Seaview Budget", PricePerNight: 1200, Type: catalog.TierAffordable},
			{ID: "h-mid", DestinationID: "durban", Name: "Promenade Inn", PricePerNight: 1500, Type: catalog.TierAffordable, IncludesBreakfast: true},
			{ID: "h-dear", DestinationID: "durban", Name: "Pier Hotel", PricePerNight: 2100, Type: catalog.TierAffordable},
		},
	})
}

func baseRequest() *QuoteRequest {
	return &QuoteRequest{
		DestinationID: "durban",
		PackageID:     "beach-break",
		CheckIn:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		Adults:        2,
		Children:      1,
		ChildrenAges:  []int{10},
		Rooms:         2,
		HotelType:     catalog.TierAffordable,
	}
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestCalculateQuote_DurbanScenario(t *testing.T) {
	engine := NewEngine(testStore())

	result := engine.CalculateQuote(baseRequest())
	if result == nil {
		t.Fatal("expected a quote, got nil")
	}

	if result.Nights != 2 {
		t.Errorf("expected 2 nights, got %d", result.Nights)
	}
	if result.AccommodationCost != 4800 {
		t.Errorf("expected accommodation 4800, got %d", result.AccommodationCost)
	}
	if result.PackageBaseCost != 3600 {
		t.Errorf("expected adult package cost 3600, got %d", result.PackageBaseCost)
	}
	if result.ChildrenPackageCost != 600 {
		t.Errorf("expected child package cost 600, got %d", result.ChildrenPackageCost)
	}
	if result.ChildrenOnceFees != 200 {
		t.Errorf("expected once-off fees 200, got %d", result.ChildrenOnceFees)
	}
	if result.TotalServiceFees != 1700 {
		t.Errorf("expected service fees 1700, got %d", result.TotalServiceFees)
	}
	if result.TotalForGroup != 10900 {
		t.Errorf("expected group total 10900, got %d", result.TotalForGroup)
	}
	if result.TotalPerPerson != 3633 {
		t.Errorf("expected per-person 3633, got %d", result.TotalPerPerson)
	}
	if result.PackageCost != 4400 {
		t.Errorf("expected package cost 4400, got %d", result.PackageCost)
	}
}

func TestCalculateQuote_InfantIsFreeAndExcluded(t *testing.T) {
	engine := NewEngine(testStore())

	req := baseRequest()
	req.ChildrenAges = []int{1}

	result := engine.CalculateQuote(req)
	if result == nil {
		t.Fatal("expected a quote, got nil")
	}

	if result.ChildrenPackageCost != 0 {
		t.Errorf("expected zero child package cost, got %d", result.ChildrenPackageCost)
	}
	if result.ChildrenOnceFees != 0 {
		t.Errorf("expected zero once-off fees, got %d", result.ChildrenOnceFees)
	}
	if result.TotalForGroup != 10100 {
		t.Errorf("expected group total 10100, got %d", result.TotalForGroup)
	}
	// Infant excluded from the divisor: 10100 / 2 adults.
	if result.TotalPerPerson != 5050 {
		t.Errorf("expected per-person 5050, got %d", result.TotalPerPerson)
	}
}

func TestCalculateQuote_Deterministic(t *testing.T) {
	engine := NewEngine(testStore())

	first := engine.CalculateQuote(baseRequest())
	second := engine.CalculateQuote(baseRequest())

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical requests produced different results:\n%+v\n%+v", first, second)
	}
}

func TestCalculateQuote_BreakdownSumsToTotal(t *testing.T) {
	engine := NewEngine(testStore())

	parties := []struct {
		adults   int
		children int
		ages     []int
	}{
		{1, 0, nil},
		{2, 1, []int{10}},
		{2, 2, []int{1, 15}},
		{4, 3, []int{2, 8, 14}},
		{11, 0, nil},
		{0, 2, []int{5, 9}},
	}

	for _, party := range parties {
		req := baseRequest()
		req.Adults = party.adults
		req.Children = party.children
		req.ChildrenAges = party.ages

		result := engine.CalculateQuote(req)
		if result == nil {
			t.Fatalf("expected quote for %d adults, %d children", party.adults, party.children)
		}

		sum := 0
		for _, item := range result.Breakdown {
			sum += item.Amount
		}
		if sum != result.TotalForGroup {
			t.Errorf("breakdown sums to %d, group total is %d (%d adults, %v ages)",
				sum, result.TotalForGroup, party.adults, party.ages)
		}
	}
}

func TestCalculateQuote_ServiceFeeBoundaries(t *testing.T) {
	engine := NewEngine(testStore())

	cases := []struct {
		adults int
		rate   int
	}{
		{1, 1000},
		{2, 850},
		{3, 850},
		{4, 800},
		{10, 800},
		{11, 750},
	}

	for _, tc := range cases {
		req := baseRequest()
		req.Adults = tc.adults
		req.Children = 0
		req.ChildrenAges = nil

		result := engine.CalculateQuote(req)
		if result == nil {
			t.Fatalf("expected quote for %d adults", tc.adults)
		}
		want := tc.rate * tc.adults
		if result.TotalServiceFees != want {
			t.Errorf("adults=%d: expected service fees %d, got %d",
				tc.adults, want, result.TotalServiceFees)
		}
	}
}

func TestCalculateQuote_ChildTierPrecedence(t *testing.T) {
	engine := NewEngine(testStore())

	// Age 5 matches the 3–7 tier even though a flat kids price exists.
	req := baseRequest()
	req.PackageID = "family-fun"
	req.ChildrenAges = []int{5}

	result := engine.CalculateQuote(req)
	if result == nil {
		t.Fatal("expected a quote, got nil")
	}
	if result.ChildrenPackageCost != 800 {
		t.Errorf("expected tier price 800, got %d", result.ChildrenPackageCost)
	}

	// Age 10 misses every tier, so the flat kids price applies.
	req.ChildrenAges = []int{10}
	result = engine.CalculateQuote(req)
	if result.ChildrenPackageCost != 700 {
		t.Errorf("expected flat kids price 700, got %d", result.ChildrenPackageCost)
	}

	// No tiers and no kids price: half the adult base price.
	req.PackageID = "no-kids-pricing"
	result = engine.CalculateQuote(req)
	if result.ChildrenPackageCost != 1000 {
		t.Errorf("expected fallback 1000, got %d", result.ChildrenPackageCost)
	}
}

func TestCalculateQuote_OnceOffFeeBands(t *testing.T) {
	engine := NewEngine(testStore())

	cases := []struct {
		age int
		fee int
	}{
		{2, 0},
		{3, 200},
		{12, 200},
		{13, 300},
		{17, 300},
	}

	for _, tc := range cases {
		req := baseRequest()
		req.ChildrenAges = []int{tc.age}

		result := engine.CalculateQuote(req)
		if result == nil {
			t.Fatalf("expected quote for child age %d", tc.age)
		}
		if result.ChildrenOnceFees != tc.fee {
			t.Errorf("age %d: expected once-off fee %d, got %d",
				tc.age, tc.fee, result.ChildrenOnceFees)
		}
	}
}

func TestCalculateQuote_NilOnZeroNights(t *testing.T) {
	engine := NewEngine(testStore())

	req := baseRequest()
	req.CheckOut = req.CheckIn

	if result := engine.CalculateQuote(req); result != nil {
		t.Errorf("expected nil for zero-night stay, got %+v", result)
	}
}

func TestCalculateQuote_NilOnMissingData(t *testing.T) {
	engine := NewEngine(testStore())

	req := baseRequest()
	req.PackageID = "no-such-package"
	if result := engine.CalculateQuote(req); result != nil {
		t.Error("expected nil for unknown package")
	}

	req = baseRequest()
	req.HotelType = catalog.TierPremium
	if result := engine.CalculateQuote(req); result != nil {
		t.Error("expected nil when the tier has no hotels")
	}

	req = baseRequest()
	req.DestinationID = "cape-town"
	if result := engine.CalculateQuote(req); result != nil {
		t.Error("expected nil when the package belongs to another destination")
	}

	req = baseRequest()
	req.Rooms = 0
	if result := engine.CalculateQuote(req); result != nil {
		t.Error("expected nil for zero rooms")
	}
}

func TestCalculateQuote_HotelResolution(t *testing.T) {
	engine := NewEngine(testStore())

	// No selection: first hotel of the tier, which is the cheapest.
	result := engine.CalculateQuote(baseRequest())
	if result.HotelID != "h-cheap" {
		t.Errorf("expected cheapest hotel by default, got %s", result.HotelID)
	}

	// Explicit selection wins.
	req := baseRequest()
	req.SelectedHotelID = "h-mid"
	result = engine.CalculateQuote(req)
	if result.HotelID != "h-mid" {
		t.Errorf("expected selected hotel, got %s", result.HotelID)
	}
	if result.HotelName != "Promenade Inn (includes breakfast)" {
		t.Errorf("expected breakfast annotation, got %q", result.HotelName)
	}

	// Unknown selection falls back to the first hotel.
	req.SelectedHotelID = "no-such-hotel"
	result = engine.CalculateQuote(req)
	if result.HotelID != "h-cheap" {
		t.Errorf("expected fallback to cheapest hotel, got %s", result.HotelID)
	}
}

func TestCalculateQuote_AgesPaddedAndTruncated(t *testing.T) {
	engine := NewEngine(testStore())

	// One age short: padded with age 5, which bills the kids price plus a
	// 200 once-off fee.
	req := baseRequest()
	req.Children = 2
	req.ChildrenAges = []int{10}

	result := engine.CalculateQuote(req)
	if result == nil {
		t.Fatal("expected a quote, got nil")
	}
	if result.ChildrenPackageCost != 1200 {
		t.Errorf("expected two kids at 600 each, got %d", result.ChildrenPackageCost)
	}
	if result.ChildrenOnceFees != 400 {
		t.Errorf("expected two once-off fees of 200, got %d", result.ChildrenOnceFees)
	}

	// Extra ages beyond the declared count are ignored.
	req.Children = 1
	req.ChildrenAges = []int{10, 15, 16}
	result = engine.CalculateQuote(req)
	if result.ChildrenPackageCost != 600 {
		t.Errorf("expected one kid at 600, got %d", result.ChildrenPackageCost)
	}
}

func TestCalculateAllQuotes_CheapestFirst(t *testing.T) {
	engine := NewEngine(testStore())

	req := baseRequest()
	req.SelectedHotelID = ""

	results := engine.CalculateAllQuotes(req)
	if len(results) != 3 {
		t.Fatalf("expected 3 quotes, got %d", len(results))
	}

	for i := 1; i < len(results); i++ {
		if results[i].TotalForGroup < results[i-1].TotalForGroup {
			t.Errorf("results not sorted: %d before %d",
				results[i-1].TotalForGroup, results[i].TotalForGroup)
		}
	}
	if results[0].HotelID != "h-cheap" {
		t.Errorf("expected cheapest hotel first, got %s", results[0].HotelID)
	}
}

func TestCalculateAllQuotes_EmptyNeverNil(t *testing.T) {
	engine := NewEngine(testStore())

	req := baseRequest()
	req.HotelType = catalog.TierPremium

	results := engine.CalculateAllQuotes(req)
	if results == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected no quotes, got %d", len(results))
	}
}
