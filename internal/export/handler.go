package export

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/quote"
)

// DocumentPublisher stores a rendered document and returns its public URL.
// Satisfied by storage.R2Client; nil when object storage is not configured.
type DocumentPublisher interface {
	UploadDocument(ctx context.Context, key, contentType string, body []byte) (string, error)
}

type Handler struct {
	quotes    *quote.Service
	publisher DocumentPublisher
}

func NewHandler(quotes *quote.Service, publisher DocumentPublisher) *Handler {
	return &Handler{quotes: quotes, publisher: publisher}
}

func (h *Handler) computeQuote(c *gin.Context) (*quote.QuoteView, bool) {
	var params quote.QuoteParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return nil, false
	}

	view, err := h.quotes.InstantQuote(&params)
	if err != nil {
		if errors.Is(err, quote.ErrNoQuote) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return view, true
}

//
// --------------------------------------------------
// POST /quotes/share/whatsapp
// --------------------------------------------------
//

func (h *Handler) ShareWhatsApp(c *gin.Context) {
	view, ok := h.computeQuote(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reference": view.Reference,
		"link":      WhatsAppLink(view),
	})
}

//
// --------------------------------------------------
// POST /quotes/share/email
// --------------------------------------------------
//

func (h *Handler) ShareEmail(c *gin.Context) {
	view, ok := h.computeQuote(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reference": view.Reference,
		"link":      MailtoLink(view),
	})
}

//
// --------------------------------------------------
// POST /quotes/share/document
// --------------------------------------------------
//

func (h *Handler) ShareDocument(c *gin.Context) {
	view, ok := h.computeQuote(c)
	if !ok {
		return
	}

	doc := Document(view)
	resp := gin.H{
		"reference": view.Reference,
		"document":  doc,
	}

	if h.publisher != nil {
		key := fmt.Sprintf("quotes/%s.txt", view.Reference)
		url, err := h.publisher.UploadDocument(
			c.Request.Context(),
			key,
			"text/plain; charset=utf-8",
			[]byte(doc),
		)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to publish document"})
			return
		}
		resp["url"] = url
	}

	c.JSON(http.StatusOK, resp)
}
