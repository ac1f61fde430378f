package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"gearguard/migrations"
	"gearguard/pkg/config"
	"gearguard/pkg/database/postgresql"
	"gearguard/seeders"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found")
	}

	cfg := config.New()
	ctx := context.Background()

	if err := migrations.Up(ctx, cfg.Postgres.DSN); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	if err := seeders.Run(ctx, db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}
