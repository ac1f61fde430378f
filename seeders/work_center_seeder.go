package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var workCentersData = []struct {
	Name     string
	Location string
	Capacity int
}{
	{"Assembly Line A", "Building 1, Floor 1", 12},
	{"Machine Shop", "Building 1, Floor 2", 8},
	{"Packaging", "Building 2, Floor 1", 10},
	{"Warehouse", "Building 3", 6},
}

func seedWorkCenters(ctx context.Context, db *pgxpool.Pool) error {
	for _, wc := range workCentersData {
		var count int
		if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM work_centers WHERE name = $1", wc.Name).Scan(&count); err != nil {
			return fmt.Errorf("failed to check work center %q: %w", wc.Name, err)
		}
		if count > 0 {
			continue
		}
		_, err := db.Exec(ctx,
			"INSERT INTO work_centers (name, location, capacity) VALUES ($1, $2, $3)",
			wc.Name, wc.Location, wc.Capacity)
		if err != nil {
			return fmt.Errorf("failed to insert work center %q: %w", wc.Name, err)
		}
		log.Printf("  - work center created: %s", wc.Name)
	}
	return nil
}
