package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var teamsData = []struct {
	Name        string
	Description string
	Color       string
}{
	{"Mechanics", "Rotating machinery, conveyors and presses", "#ef4444"},
	{"Electricians", "Electrical systems, panels and drives", "#f59e0b"},
	{"IT Support", "Workstations, networks and terminals", "#3b82f6"},
	{"Facilities", "Buildings, HVAC and general site upkeep", "#22c55e"},
}

func seedTeams(ctx context.Context, db *pgxpool.Pool) error {
	for _, team := range teamsData {
		var count int
		if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM teams WHERE name = $1", team.Name).Scan(&count); err != nil {
			return fmt.Errorf("failed to check team %q: %w", team.Name, err)
		}
		if count > 0 {
			continue
		}
		_, err := db.Exec(ctx,
			"INSERT INTO teams (name, description, color) VALUES ($1, $2, $3)",
			team.Name, team.Description, team.Color)
		if err != nil {
			return fmt.Errorf("failed to insert team %q: %w", team.Name, err)
		}
		log.Printf("  - team created: %s", team.Name)
	}
	return nil
}
