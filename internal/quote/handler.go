package quote

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

//
// --------------------------------------------------
// POST /quotes
// --------------------------------------------------
//

func (h *Handler) InstantQuote(c *gin.Context) {
	var params QuoteParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.service.InstantQuote(&params)
	if err != nil {
		if errors.Is(err, ErrNoQuote) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

//
// --------------------------------------------------
// POST /quotes/all
// --------------------------------------------------
//

func (h *Handler) QuoteAllHotels(c *gin.Context) {
	var params QuoteParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	views, err := h.service.QuoteAllHotels(&params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Empty list is a valid answer: no hotels matched the tier.
	c.JSON(http.StatusOK, gin.H{"quotes": views})
}
