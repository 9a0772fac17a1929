package catalog

// Store is the indexed, read-only catalog built once at startup. All lookups
// are map hits or pre-grouped slices, so it is safe for concurrent readers.
type Store struct {
	destinations     []Destination
	destinationByID  map[string]*Destination
	packageByID      map[string]*Package
	packagesByDest   map[string][]*Package
	hotelByID        map[string]*Hotel
	hotelsByDestTier map[string][]*Hotel
	activitiesByDest map[string][]*Activity
}

func destTierKey(destinationID string, tier Tier) string {
	return destinationID + "|" + string(tier)
}

// NewStore indexes a snapshot. Slice order from the snapshot is preserved,
// so hotels stay cheapest-first within each destination+tier.
func NewStore(snap *Snapshot) *Store {
	s := &Store{
		destinations:     snap.Destinations,
		destinationByID:  make(map[string]*Destination, len(snap.Destinations)),
		packageByID:      make(map[string]*Package, len(snap.Packages)),
		packagesByDest:   make(map[string][]*Package),
		hotelByID:        make(map[string]*Hotel, len(snap.Hotels)),
		hotelsByDestTier: make(map[string][]*Hotel),
		activitiesByDest: make(map[string][]*Activity),
	}

	for i := range snap.Destinations {
		d := &snap.Destinations[i]
		s.destinationByID[d.ID] = d
	}
	for i := range snap.Packages {
		p := &snap.Packages[i]
		s.packageByID[p.ID] = p
		s.packagesByDest[p.DestinationID] = append(s.packagesByDest[p.DestinationID], p)
	}
	for i := range snap.Hotels {
		h := &snap.Hotels[i]
		s.hotelByID[h.ID] = h
		key := destTierKey(h.DestinationID, h.Type)
		s.hotelsByDestTier[key] = append(s.hotelsByDestTier[key], h)
	}
	for i := range snap.Activities {
		a := &snap.Activities[i]
		s.activitiesByDest[a.DestinationID] = append(s.activitiesByDest[a.DestinationID], a)
	}

	return s
}

func (s *Store) Destinations() []Destination {
	return s.destinations
}

func (s *Store) DestinationByID(id string) (*Destination, bool) {
	d, ok := s.destinationByID[id]
	return d, ok
}

func (s *Store) PackageByID(id string) (*Package, bool) {
	p, ok := s.packageByID[id]
	return p, ok
}

func (s *Store) Packages(destinationID string) []*Package {
	return s.packagesByDest[destinationID]
}

func (s *Store) HotelByID(id string) (*Hotel, bool) {
	h, ok := s.hotelByID[id]
	return h, ok
}

// HotelsByTier returns the hotels for a destination+tier in catalog order
// (cheapest first). Empty when the combination has no hotels.
func (s *Store) HotelsByTier(destinationID string, tier Tier) []*Hotel {
	return s.hotelsByDestTier[destTierKey(destinationID, tier)]
}

func (s *Store) Activities(destinationID string) []*Activity {
	return s.activitiesByDest[destinationID]
}
