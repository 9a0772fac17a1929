package catalog

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Load full catalog snapshot
// --------------------------------------------------
func (r *PostgresRepository) Load(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}

	if err := r.loadDestinations(ctx, snap); err != nil {
		return nil, err
	}
	if err := r.loadPackages(ctx, snap); err != nil {
		return nil, err
	}
	if err := r.loadHotels(ctx, snap); err != nil {
		return nil, err
	}
	if err := r.loadActivities(ctx, snap); err != nil {
		return nil, err
	}

	return snap, nil
}

func (r *PostgresRepository) loadDestinations(ctx context.Context, snap *Snapshot) error {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, country, international
		FROM destinations
		ORDER BY name
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var d Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.Country, &d.International); err != nil {
			return err
		}
		snap.Destinations = append(snap.Destinations, d)
	}
	return rows.Err()
}

func (r *PostgresRepository) loadPackages(ctx context.Context, snap *Snapshot) error {
	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			destination_id,
			name,
			base_price,
			kids_price,
			kids_price_tiers,
			activities_included,
			duration
		FROM packages
		ORDER BY destination_id, base_price
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p Package
		var tiersJSON []byte
		if err := rows.Scan(
			&p.ID,
			&p.DestinationID,
			&p.Name,
			&p.BasePrice,
			&p.KidsPrice,
			&tiersJSON,
			&p.ActivitiesIncluded,
			&p.Duration,
		); err != nil {
			return err
		}
		if len(tiersJSON) > 0 {
			if err := json.Unmarshal(tiersJSON, &p.KidsPriceTiers); err != nil {
				return err
			}
		}
		snap.Packages = append(snap.Packages, p)
	}
	return rows.Err()
}

func (r *PostgresRepository) loadHotels(ctx context.Context, snap *Snapshot) error {
	// Ascending price per destination+tier keeps "first hotel" = "cheapest"
	// after the Store groups them.
	rows, err := r.db.Query(ctx, `
		SELECT id, destination_id, name, price_per_night, type, includes_breakfast
		FROM hotels
		ORDER BY destination_id, type, price_per_night
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var h Hotel
		if err := rows.Scan(
			&h.ID,
			&h.DestinationID,
			&h.Name,
			&h.PricePerNight,
			&h.Type,
			&h.IncludesBreakfast,
		); err != nil {
			return err
		}
		snap.Hotels = append(snap.Hotels, h)
	}
	return rows.Err()
}

func (r *PostgresRepository) loadActivities(ctx context.Context, snap *Snapshot) error {
	rows, err := r.db.Query(ctx, `
		SELECT id, destination_id, name, price
		FROM activities
		ORDER BY destination_id, name
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.DestinationID, &a.Name, &a.Price); err != nil {
			return err
		}
		snap.Activities = append(snap.Activities, a)
	}
	return rows.Err()
}
