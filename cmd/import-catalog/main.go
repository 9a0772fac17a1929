package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/catalog"
	"github.com/TravelAffordable/instant-travel-quote-sub000/internal/db"
)

// One-shot loader: writes a catalog snapshot (a JSON file, or the built-in
// seed when no file is given) into the postgres catalog tables.
func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	file := flag.String("file", "", "path to a catalog snapshot JSON file (default: built-in seed)")
	flag.Parse()

	snap, err := loadSnapshot(*file)
	if err != nil {
		log.Fatal("❌ Failed to read catalog snapshot:", err)
	}

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	ctx := context.Background()
	if err := importSnapshot(ctx, pgDB, snap); err != nil {
		log.Fatal("❌ Import failed:", err)
	}

	log.Printf("✅ Imported %d destinations, %d packages, %d hotels, %d activities",
		len(snap.Destinations), len(snap.Packages), len(snap.Hotels), len(snap.Activities))
}

func loadSnapshot(path string) (*catalog.Snapshot, error) {
	if path == "" {
		return catalog.Seed(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var snap catalog.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func importSnapshot(ctx context.Context, pgDB *pgxpool.Pool, snap *catalog.Snapshot) error {
	tx, err := pgDB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, d := range snap.Destinations {
		if _, err := tx.Exec(ctx, `
			INSERT INTO destinations (id, name, country, international)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				country = EXCLUDED.country,
				international = EXCLUDED.international
		`, d.ID, d.Name, d.Country, d.International); err != nil {
			return err
		}
	}

	for _, p := range snap.Packages {
		var tiersJSON []byte
		if len(p.KidsPriceTiers) > 0 {
			tiersJSON, err = json.Marshal(p.KidsPriceTiers)
			if err != nil {
				return err
			}
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO packages (
				id, destination_id, name, base_price,
				kids_price, kids_price_tiers, activities_included, duration
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO UPDATE SET
				destination_id = EXCLUDED.destination_id,
				name = EXCLUDED.name,
				base_price = EXCLUDED.base_price,
				kids_price = EXCLUDED.kids_price,
				kids_price_tiers = EXCLUDED.kids_price_tiers,
				activities_included = EXCLUDED.activities_included,
				duration = EXCLUDED.duration
		`, p.ID, p.DestinationID, p.Name, p.BasePrice,
			p.KidsPrice, tiersJSON, p.ActivitiesIncluded, p.Duration); err != nil {
			return err
		}
	}

	for _, h := range snap.Hotels {
		if _, err := tx.Exec(ctx, `
			INSERT INTO hotels (
				id, destination_id, name, price_per_night, type, includes_breakfast
			)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET
				destination_id = EXCLUDED.destination_id,
				name = EXCLUDED.name,
				price_per_night = EXCLUDED.price_per_night,
				type = EXCLUDED.type,
				includes_breakfast = EXCLUDED.includes_breakfast
		`, h.ID, h.DestinationID, h.Name, h.PricePerNight, string(h.Type), h.IncludesBreakfast); err != nil {
			return err
		}
	}

	for _, a := range snap.Activities {
		if _, err := tx.Exec(ctx, `
			INSERT INTO activities (id, destination_id, name, price)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET
				destination_id = EXCLUDED.destination_id,
				name = EXCLUDED.name,
				price = EXCLUDED.price
		`, a.ID, a.DestinationID, a.Name, a.Price); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
