package export

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/quote"
)

// Pure formatters over a computed QuoteView. Totals are reproduced verbatim
// from the view, never re-derived.

// FormatRand renders an amount as "R10 900" (space-grouped thousands).
func FormatRand(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + "R" + strings.Join(groups, " ")
}

// Document renders the full plain-text quote document.
func Document(v *quote.QuoteView) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Travel Affordable - Holiday Quote %s\n\n", v.Reference)
	fmt.Fprintf(&b, "Destination: %s\n", v.DestinationName)
	fmt.Fprintf(&b, "Package: %s\n", v.PackageName)
	fmt.Fprintf(&b, "Hotel: %s\n", v.HotelName)
	fmt.Fprintf(&b, "Check-in: %s | Check-out: %s | Nights: %d\n",
		v.CheckIn.Format("2006-01-02"), v.CheckOut.Format("2006-01-02"), v.Nights)
	fmt.Fprintf(&b, "Adults: %d | Children: %d | Rooms: %d\n\n",
		v.Adults, v.Children, v.Rooms)

	for _, item := range v.Breakdown {
		fmt.Fprintf(&b, "%-22s %s\n", item.Label+":", FormatRand(item.Amount))
	}

	fmt.Fprintf(&b, "\nTotal for group: %s\n", FormatRand(v.DisplayTotal))
	fmt.Fprintf(&b, "Per person: %s\n", FormatRand(v.TotalPerPerson))

	return b.String()
}

// summary is the short form used inside share links.
func summary(v *quote.QuoteView) string {
	return fmt.Sprintf(
		"Holiday quote %s: %s - %s, %s. %d night(s), %d adult(s), %d child(ren), %d room(s). Total %s (%s per person).",
		v.Reference,
		v.DestinationName,
		v.PackageName,
		v.HotelName,
		v.Nights,
		v.Adults,
		v.Children,
		v.Rooms,
		FormatRand(v.DisplayTotal),
		FormatRand(v.TotalPerPerson),
	)
}

// escape percent-encodes for use inside wa.me and mailto links.
// url.QueryEscape alone would turn spaces into '+', which WhatsApp and mail
// clients render literally.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// WhatsAppLink builds a wa.me deep link carrying the quote summary.
func WhatsAppLink(v *quote.QuoteView) string {
	return "https://wa.me/?text=" + escape(summary(v))
}

// MailtoLink builds a mailto: link with the full document as the body.
func MailtoLink(v *quote.QuoteView) string {
	subject := fmt.Sprintf("Holiday quote %s - %s", v.Reference, v.DestinationName)
	return "mailto:?subject=" + escape(subject) + "&body=" + escape(Document(v))
}
