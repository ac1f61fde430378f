package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var equipmentData = []struct {
	Name         string
	SerialNumber string
	Category     string
	Team         string
	Location     string
}{
	{"CNC Mill 01", "CNC-2021-001", "CNC Machines", "Mechanics", "Machine Shop"},
	{"CNC Lathe 02", "CNC-2021-002", "CNC Machines", "Mechanics", "Machine Shop"},
	{"Main Conveyor", "CNV-2019-001", "Conveyors", "Mechanics", "Assembly Line A"},
	{"Rooftop AC Unit", "HVAC-2020-003", "HVAC", "Facilities", "Building 1 Roof"},
	{"Forklift FL-1", "FLT-2022-001", "Forklifts", "Facilities", "Warehouse"},
	{"Rack Server 01", "SRV-2023-001", "IT Hardware", "IT Support", "Server Room"},
}

func seedEquipment(ctx context.Context, db *pgxpool.Pool) error {
	for _, item := range equipmentData {
		var count int
		if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM equipment WHERE serial_number = $1", item.SerialNumber).Scan(&count); err != nil {
			return fmt.Errorf("failed to check equipment %q: %w", item.SerialNumber, err)
		}
		if count > 0 {
			continue
		}

		var categoryID, teamID *string
		var id string
		err := db.QueryRow(ctx, "SELECT id FROM equipment_categories WHERE name = $1", item.Category).Scan(&id)
		if err == nil {
			categoryID = &id
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to look up category %q: %w", item.Category, err)
		}
		var tid string
		err = db.QueryRow(ctx, "SELECT id FROM teams WHERE name = $1", item.Team).Scan(&tid)
		if err == nil {
			teamID = &tid
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to look up team %q: %w", item.Team, err)
		}

		_, err = db.Exec(ctx, `
			INSERT INTO equipment (name, serial_number, category_id, team_id, location)
			VALUES ($1, $2, $3, $4, $5)
		`, item.Name, item.SerialNumber, categoryID, teamID, item.Location)
		if err != nil {
			return fmt.Errorf("failed to insert equipment %q: %w", item.Name, err)
		}
		log.Printf("  - equipment created: %s", item.Name)
	}
	return nil
}
