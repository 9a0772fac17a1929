package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the read-only catalog browse endpoints the quote forms
// populate their dropdowns from.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// GET /destinations
func (h *Handler) ListDestinations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"destinations": h.store.Destinations()})
}

// GET /destinations/:id/packages
func (h *Handler) ListPackages(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.DestinationByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown destination"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": h.store.Packages(id)})
}

// GET /destinations/:id/hotels?type=affordable
func (h *Handler) ListHotels(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.DestinationByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown destination"})
		return
	}

	tier := Tier(c.Query("type"))
	if tier == "" {
		// All tiers, cheapest first within each.
		hotels := []*Hotel{}
		for _, t := range []Tier{TierVeryAffordable, TierAffordable, TierPremium} {
			hotels = append(hotels, h.store.HotelsByTier(id, t)...)
		}
		c.JSON(http.StatusOK, gin.H{"hotels": hotels})
		return
	}

	if !ValidTier(tier) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotel type"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotels": h.store.HotelsByTier(id, tier)})
}

// GET /destinations/:id/activities
func (h *Handler) ListActivities(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.DestinationByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown destination"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": h.store.Activities(id)})
}
