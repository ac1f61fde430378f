package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Run seeds the baseline data set. Every seeder is idempotent, so running
// against a populated database is safe.
func Run(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("seeding database...")

	steps := []func(context.Context, *pgxpool.Pool) error{
		seedAdmin,
		seedTeams,
		seedCategories,
		seedWorkCenters,
		seedEquipment,
	}
	for _, step := range steps {
		if err := step(ctx, db); err != nil {
			return err
		}
	}

	log.Println("seeding finished")
	return nil
}
