package catalog

func intPtr(v int) *int { return &v }

// Seed returns the canonical built-in catalog. Hotels are listed cheapest
// first within each destination+tier; quote callers rely on that order.
func Seed() *Snapshot {
	return &Snapshot{
		Destinations: []Destination{
			{ID: "durban", Name: "Durban", Country: "South Africa"},
			{ID: "cape-town", Name: "Cape Town", Country: "South Africa"},
			{ID: "sun-city", Name: "Sun City", Country: "South Africa"},
			{ID: "mauritius", Name: "Mauritius", Country: "Mauritius", International: true},
		},

		Packages: []Package{
			{
				ID:            "durban-beach-break",
				DestinationID: "durban",
				Name:          "Durban Beach Break",
				BasePrice:     1800,
				KidsPrice:     intPtr(600),
				ActivitiesIncluded: []string{
					"uShaka Marine World",
					"Golden Mile beach day",
					"Moses Mabhida SkyCar",
				},
				Duration: "3 Days, 2 Nights",
			},
			{
				ID:            "durban-family-fun",
				DestinationID: "durban",
				Name:          "Durban Family Fun",
				BasePrice:     2400,
				KidsPriceTiers: []KidsPriceTier{
					{MinAge: 3, MaxAge: 7, Price: 800},
					{MinAge: 8, MaxAge: 12, Price: 1100},
					{MinAge: 13, MaxAge: 17, Price: 1500},
				},
				ActivitiesIncluded: []string{
					"uShaka Marine World",
					"Ushaka Wet 'n Wild",
					"Umgeni River Bird Park",
					"Funworld amusement rides",
				},
				Duration: "4 Days, 3 Nights",
			},
			{
				ID:            "cape-town-explorer",
				DestinationID: "cape-town",
				Name:          "Cape Town Explorer",
				BasePrice:     2800,
				KidsPrice:     intPtr(950),
				ActivitiesIncluded: []string{
					"Table Mountain cableway",
					"V&A Waterfront",
					"Cape Point day tour",
				},
				Duration: "4 Days, 3 Nights",
			},
			{
				ID:            "cape-town-winelands",
				DestinationID: "cape-town",
				Name:          "Cape Winelands Escape",
				BasePrice:     3200,
				ActivitiesIncluded: []string{
					"Stellenbosch wine tram",
					"Franschhoek tasting route",
				},
				Duration: "3 Days, 2 Nights",
			},
			{
				ID:            "sun-city-getaway",
				DestinationID: "sun-city",
				Name:          "Sun City Getaway",
				BasePrice:     2600,
				KidsPriceTiers: []KidsPriceTier{
					{MinAge: 3, MaxAge: 12, Price: 900},
					{MinAge: 13, MaxAge: 17, Price: 1300},
				},
				ActivitiesIncluded: []string{
					"Valley of Waves",
					"Maze of the Lost City",
					"Pilanesberg game drive",
				},
				Duration: "3 Days, 2 Nights",
			},
			{
				ID:            "mauritius-island-escape",
				DestinationID: "mauritius",
				Name:          "Mauritius Island Escape",
				BasePrice:     7500,
				KidsPrice:     intPtr(3200),
				ActivitiesIncluded: []string{
					"Ile aux Cerfs catamaran",
					"Casela World of Adventures",
					"Port Louis market tour",
				},
				Duration: "7 Days, 6 Nights",
			},
		},

		Hotels: []Hotel{
			// Durban
			{ID: "durban-gooderson-tropicana", DestinationID: "durban", Name: "Gooderson Tropicana", PricePerNight: 950, Type: TierVeryAffordable},
			{ID: "durban-blue-waters", DestinationID: "durban", Name: "Blue Waters Hotel", PricePerNight: 1100, Type: TierVeryAffordable, IncludesBreakfast: true},
			{ID: "durban-garden-court", DestinationID: "durban", Name: "Garden Court Marine Parade", PricePerNight: 1200, Type: TierAffordable, IncludesBreakfast: true},
			{ID: "durban-belaire-suites", DestinationID: "durban", Name: "Belaire Suites", PricePerNight: 1350, Type: TierAffordable},
			{ID: "durban-southern-sun-elangeni", DestinationID: "durban", Name: "Southern Sun Elangeni & Maharani", PricePerNight: 1950, Type: TierPremium, IncludesBreakfast: true},
			{ID: "durban-oyster-box", DestinationID: "durban", Name: "The Oyster Box", PricePerNight: 4200, Type: TierPremium, IncludesBreakfast: true},

			// Cape Town
			{ID: "cape-town-never-at-home", DestinationID: "cape-town", Name: "Never @ Home Green Point", PricePerNight: 1050, Type: TierVeryAffordable},
			{ID: "cape-town-signal-hill-lodge", DestinationID: "cape-town", Name: "Signal Hill Lodge", PricePerNight: 1250, Type: TierVeryAffordable, IncludesBreakfast: true},
			{ID: "cape-town-park-inn", DestinationID: "cape-town", Name: "Park Inn Foreshore", PricePerNight: 1600, Type: TierAffordable, IncludesBreakfast: true},
			{ID: "cape-town-townhouse", DestinationID: "cape-town", Name: "Townhouse Hotel", PricePerNight: 1750, Type: TierAffordable},
			{ID: "cape-town-table-bay", DestinationID: "cape-town", Name: "The Table Bay", PricePerNight: 4800, Type: TierPremium, IncludesBreakfast: true},

			// Sun City
			{ID: "sun-city-cabanas", DestinationID: "sun-city", Name: "The Cabanas", PricePerNight: 1500, Type: TierAffordable, IncludesBreakfast: true},
			{ID: "sun-city-main-hotel", DestinationID: "sun-city", Name: "Sun City Hotel", PricePerNight: 2300, Type: TierPremium},
			{ID: "sun-city-palace", DestinationID: "sun-city", Name: "The Palace of the Lost City", PricePerNight: 5600, Type: TierPremium, IncludesBreakfast: true},

			// Mauritius
			{ID: "mauritius-coin-de-mire", DestinationID: "mauritius", Name: "Coin de Mire Attitude", PricePerNight: 2400, Type: TierAffordable, IncludesBreakfast: true},
			{ID: "mauritius-lux-grand-gaube", DestinationID: "mauritius", Name: "LUX* Grand Gaube", PricePerNight: 6900, Type: TierPremium, IncludesBreakfast: true},
		},

		Activities: []Activity{
			{ID: "durban-ushaka", DestinationID: "durban", Name: "uShaka Marine World", Price: 350},
			{ID: "durban-wet-n-wild", DestinationID: "durban", Name: "Ushaka Wet 'n Wild", Price: 250},
			{ID: "durban-skycar", DestinationID: "durban", Name: "Moses Mabhida SkyCar", Price: 120},
			{ID: "durban-bird-park", DestinationID: "durban", Name: "Umgeni River Bird Park", Price: 90},
			{ID: "cape-town-cableway", DestinationID: "cape-town", Name: "Table Mountain cableway", Price: 420},
			{ID: "cape-town-cape-point", DestinationID: "cape-town", Name: "Cape Point day tour", Price: 850},
			{ID: "cape-town-wine-tram", DestinationID: "cape-town", Name: "Stellenbosch wine tram", Price: 650},
			{ID: "sun-city-valley-of-waves", DestinationID: "sun-city", Name: "Valley of Waves", Price: 300},
			{ID: "sun-city-game-drive", DestinationID: "sun-city", Name: "Pilanesberg game drive", Price: 950},
			{ID: "mauritius-catamaran", DestinationID: "mauritius", Name: "Ile aux Cerfs catamaran", Price: 1400},
			{ID: "mauritius-casela", DestinationID: "mauritius", Name: "Casela World of Adventures", Price: 1100},
		},
	}
}
