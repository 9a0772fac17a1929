package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates the catalog tables
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// DESTINATIONS
	// -------------------------------
	destinationsSQL := `
		CREATE TABLE IF NOT EXISTS destinations (
			id VARCHAR(100) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			country VARCHAR(100) NOT NULL,
			international BOOLEAN NOT NULL DEFAULT FALSE
		)
	`
	if _, err := db.Exec(ctx, destinationsSQL); err != nil {
		return err
	}

	// -------------------------------
	// PACKAGES
	// -------------------------------
	packagesSQL := `
		CREATE TABLE IF NOT EXISTS packages (
			id VARCHAR(100) PRIMARY KEY,
			destination_id VARCHAR(100) NOT NULL REFERENCES destinations(id),
			name VARCHAR(255) NOT NULL,
			base_price INTEGER NOT NULL,
			kids_price INTEGER NULL,
			kids_price_tiers JSONB NULL,
			activities_included TEXT[] NOT NULL DEFAULT '{}',
			duration VARCHAR(100) NOT NULL DEFAULT ''
		)
	`
	if _, err := db.Exec(ctx, packagesSQL); err != nil {
		return err
	}

	// -------------------------------
	// HOTELS
	// -------------------------------
	hotelsSQL := `
		CREATE TABLE IF NOT EXISTS hotels (
			id VARCHAR(100) PRIMARY KEY,
			destination_id VARCHAR(100) NOT NULL REFERENCES destinations(id),
			name VARCHAR(255) NOT NULL,
			price_per_night INTEGER NOT NULL,
			type VARCHAR(50) NOT NULL,
			includes_breakfast BOOLEAN NOT NULL DEFAULT FALSE
		)
	`
	if _, err := db.Exec(ctx, hotelsSQL); err != nil {
		return err
	}

	// -------------------------------
	// ACTIVITIES
	// -------------------------------
	activitiesSQL := `
		CREATE TABLE IF NOT EXISTS activities (
			id VARCHAR(100) PRIMARY KEY,
			destination_id VARCHAR(100) NOT NULL REFERENCES destinations(id),
			name VARCHAR(255) NOT NULL,
			price INTEGER NOT NULL
		)
	`
	if _, err := db.Exec(ctx, activitiesSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
