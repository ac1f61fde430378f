package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"gearguard/pkg/constants"
)

func seedAdmin(ctx context.Context, db *pgxpool.Pool) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@gearguard.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
	}

	var exists string
	err := db.QueryRow(ctx, "SELECT id FROM profiles WHERE lower(email) = lower($1)", email).Scan(&exists)
	if err == nil {
		log.Println("  - admin profile already exists, skipping")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to check admin profile: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `
		INSERT INTO profiles (email, full_name, role, password_hash)
		VALUES ($1, 'Administrator', $2, $3)
	`, email, constants.RoleAdmin, string(hash))
	if err != nil {
		return fmt.Errorf("failed to insert admin profile: %w", err)
	}

	log.Printf("  - admin profile created (%s)", email)
	return nil
}
