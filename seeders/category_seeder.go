package seeders

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var categoriesData = []struct {
	Name        string
	Description string
}{
	{"CNC Machines", "Computer-controlled cutting and milling"},
	{"Conveyors", "Belt and roller transport lines"},
	{"HVAC", "Heating, ventilation and air conditioning"},
	{"Forklifts", "Warehouse lifting vehicles"},
	{"IT Hardware", "Servers, terminals and network gear"},
}

func seedCategories(ctx context.Context, db *pgxpool.Pool) error {
	for _, category := range categoriesData {
		_, err := db.Exec(ctx, `
			INSERT INTO equipment_categories (name, description)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING
		`, category.Name, category.Description)
		if err != nil {
			return fmt.Errorf("failed to insert category %q: %w", category.Name, err)
		}
	}
	return nil
}
