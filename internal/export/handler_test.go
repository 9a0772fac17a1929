package export

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/catalog"
	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/pricing"
	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/quote"
)

// --------------------------------------------------
// Mock publisher
// --------------------------------------------------

type MockPublisher struct {
	lastKey  string
	lastBody []byte
}

func (m *MockPublisher) UploadDocument(ctx context.Context, key, contentType string, body []byte) (string, error) {
	m.lastKey = key
	m.lastBody = body
	return "https://cdn.example.com/" + key, nil
}

func testRouter(publisher DocumentPublisher) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := catalog.NewStore(catalog.Seed())
	quotes := quote.NewService(pricing.NewEngine(store))
	handler := NewHandler(quotes, publisher)

	r := gin.New()
	r.POST("/quotes/share/whatsapp", handler.ShareWhatsApp)
	r.POST("/quotes/share/email", handler.ShareEmail)
	r.POST("/quotes/share/document", handler.ShareDocument)
	return r
}

const shareBody = `{
	"destination_id": "durban",
	"package_id": "durban-beach-break",
	"check_in": "2025-06-10",
	"check_out": "2025-06-12",
	"adults": 2,
	"children": 1,
	"children_ages": [10],
	"rooms": 2,
	"hotel_type": "affordable",
	"selected_hotel_id": "durban-garden-court"
}`

func postShare(t *testing.T, r *gin.Engine, path string) map[string]any {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(shareBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return resp
}

func TestShareWhatsApp(t *testing.T) {
	resp := postShare(t, testRouter(nil), "/quotes/share/whatsapp")

	link, _ := resp["link"].(string)
	if !strings.HasPrefix(link, "https://wa.me/?text=") {
		t.Errorf("unexpected link: %s", link)
	}
	if !strings.Contains(link, "R10%20900") {
		t.Errorf("link missing quote total: %s", link)
	}
}

func TestShareEmail(t *testing.T) {
	resp := postShare(t, testRouter(nil), "/quotes/share/email")

	link, _ := resp["link"].(string)
	if !strings.HasPrefix(link, "mailto:?subject=") {
		t.Errorf("unexpected link: %s", link)
	}
}

func TestShareDocument_WithPublisher(t *testing.T) {
	publisher := &MockPublisher{}
	resp := postShare(t, testRouter(publisher), "/quotes/share/document")

	doc, _ := resp["document"].(string)
	if !strings.Contains(doc, "Total for group: R10 900") {
		t.Errorf("document missing total:\n%s", doc)
	}

	url, _ := resp["url"].(string)
	if !strings.HasPrefix(url, "https://cdn.example.com/quotes/") {
		t.Errorf("unexpected published url: %s", url)
	}
	if !strings.HasSuffix(publisher.lastKey, ".txt") {
		t.Errorf("unexpected object key: %s", publisher.lastKey)
	}
	if !strings.Contains(string(publisher.lastBody), "R10 900") {
		t.Error("published body does not match the document")
	}
}

func TestShareDocument_WithoutPublisher(t *testing.T) {
	resp := postShare(t, testRouter(nil), "/quotes/share/document")

	if _, ok := resp["url"]; ok {
		t.Error("did not expect a url without a configured publisher")
	}
	if _, ok := resp["document"].(string); !ok {
		t.Error("expected the document inline")
	}
}
