package pricing

// Children younger than 3 are free everywhere: no package cost, no fees,
// and they never count toward the per-person divisor.
const (
	minBillableAge = 3
	maxBillableAge = 17
)

func billable(age int) bool {
	return age >= minBillableAge && age <= maxBillableAge
}

// FeePolicy names one of the service-fee tariffs that historically diverged
// between call sites. The engine applies StandardFees unless a caller asks
// for the legacy group tariff explicitly; the two are never blended.
type FeePolicy interface {
	Name() string

	// AdultServiceFees returns the total coordination fee for the adults.
	// The rate is flat per adult, not marginal: the whole adult count is
	// billed at one rate.
	AdultServiceFees(adults, children int) int

	// ChildOnceFee returns the flat once-off fee for one billable child.
	ChildOnceFee(age, adults, children int) int
}

// --------------------------------------------------
// Standard tariff (canonical)
// --------------------------------------------------

// StandardFees is the canonical tariff used by instant quotes:
// 1 adult → 1000, 2–3 → 850, 4–10 → 800, 11+ → 750 per adult;
// child once-off fee 200 for ages 3–12, 300 for ages 13–17.
type StandardFees struct{}

func (StandardFees) Name() string { return "standard" }

func (StandardFees) AdultServiceFees(adults, children int) int {
	return standardAdultRate(adults) * adults
}

func standardAdultRate(adults int) int {
	switch {
	case adults <= 0:
		return 0
	case adults == 1:
		return 1000
	case adults <= 3:
		return 850
	case adults <= 10:
		return 800
	default:
		return 750
	}
}

func (StandardFees) ChildOnceFee(age, adults, children int) int {
	return bandedChildFee(age)
}

func bandedChildFee(age int) int {
	switch {
	case age >= 3 && age <= 12:
		return 200
	case age >= 13 && age <= 17:
		return 300
	default:
		return 0
	}
}

// --------------------------------------------------
// Legacy group tariff (bulk quotes)
// --------------------------------------------------

// LegacyGroupFees is the older bulk-quote tariff: adult breakpoints
// 1 / 2–3 / 4–9 / 10+, and once the total party reaches 25 people the
// per-adult rate drops to a flat group rate with a reduced child fee.
// Kept as a separately named policy; see DESIGN.md.
type LegacyGroupFees struct{}

func (LegacyGroupFees) Name() string { return "legacy-group" }

const legacyGroupThreshold = 25

func (LegacyGroupFees) AdultServiceFees(adults, children int) int {
	if adults+children >= legacyGroupThreshold {
		return legacyGroupAdultRate(adults) * adults
	}
	return legacyAdultRate(adults) * adults
}

func legacyAdultRate(adults int) int {
	switch {
	case adults <= 0:
		return 0
	case adults == 1:
		return 1000
	case adults <= 3:
		return 850
	case adults <= 9:
		return 800
	default:
		return 750
	}
}

func legacyGroupAdultRate(adults int) int {
	switch {
	case adults >= 10:
		return 400
	case adults >= 4:
		return 450
	default:
		return 550
	}
}

func (LegacyGroupFees) ChildOnceFee(age, adults, children int) int {
	if !billable(age) {
		return 0
	}
	if adults+children >= legacyGroupThreshold {
		if adults >= 2 {
			return 150
		}
		return 300
	}
	return bandedChildFee(age)
}

// --------------------------------------------------
// Rounding
// --------------------------------------------------

// RoundToNearest10 rounds half-up to the nearest multiple of 10. Group and
// bulk quotes round their totals with this for clean figures; single-hotel
// instant quotes stay exact. The engine itself never applies it.
func RoundToNearest10(amount int) int {
	if amount < 0 {
		return -RoundToNearest10(-amount)
	}
	return (amount + 5) / 10 * 10
}
