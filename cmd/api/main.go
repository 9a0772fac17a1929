package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/catalog"
	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/db"
	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/export"
	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/pricing"
	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/quote"
	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	// ───────────────────────── CATALOG ─────────────────────────
	// Loaded once at startup; everything after this point is read-only.
	var repo catalog.Repository
	if os.Getenv("DATABASE_URL") != "" {
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()
		repo = catalog.NewPostgresRepository(pgDB)
	} else {
		log.Println("DATABASE_URL not set, serving the built-in seed catalog")
		repo = catalog.NewMemoryRepository()
	}

	snap, err := repo.Load(context.Background())
	if err != nil {
		log.Fatal("❌ Catalog load failed:", err)
	}
	store := catalog.NewStore(snap)
	log.Printf("✅ Catalog loaded: %d destinations, %d packages, %d hotels",
		len(snap.Destinations), len(snap.Packages), len(snap.Hotels))

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	var publisher export.DocumentPublisher
	if storage.Configured() {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		publisher = r2Client
	} else {
		log.Println("R2 not configured, document publishing disabled")
	}

	// ───────────────────────── SERVICES ─────────────────────────
	engine := pricing.NewEngine(store)
	quoteService := quote.NewService(engine)

	// ───────────────────────── HANDLERS ─────────────────────────
	catalogHandler := catalog.NewHandler(store)
	quoteHandler := quote.NewHandler(quoteService)
	exportHandler := export.NewHandler(quoteService, publisher)

	// ───────────────────────── CATALOG ROUTES ─────────────────────────
	destinations := r.Group("/destinations")
	{
		destinations.GET("", catalogHandler.ListDestinations)
		destinations.GET("/:id/packages", catalogHandler.ListPackages)
		destinations.GET("/:id/hotels", catalogHandler.ListHotels)
		destinations.GET("/:id/activities", catalogHandler.ListActivities)
	}

	// ───────────────────────── QUOTE ROUTES ─────────────────────────
	quotes := r.Group("/quotes")
	{
		quotes.POST("", quoteHandler.InstantQuote)
		quotes.POST("/all", quoteHandler.QuoteAllHotels)

		share := quotes.Group("/share")
		{
			share.POST("/whatsapp", exportHandler.ShareWhatsApp)
			share.POST("/email", exportHandler.ShareEmail)
			share.POST("/document", exportHandler.ShareDocument)
		}
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 API running at http://localhost:%s", port)
	r.Run(":" + port)
}
