package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/homelyhq/homely-backend/config"
	pginfra "github.com/homelyhq/homely-backend/internal/infrastructure/postgres"
	"github.com/homelyhq/homely-backend/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer pool.Close()

	if err := pginfra.NewSchemaGuard(pool).Ensure(ctx); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	username := "demoUser"
	email := "demo@homelyhq.dev"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID int64
	err = pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password, name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, username, email, hash, "Demo User").Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d username=%s password=%s\n", userID, username, password)

	listings := []struct {
		title       string
		description string
		price       float64
		location    string
	}{
		{"Sunny two-bedroom apartment", "Bright apartment near the park with a renovated kitchen.", 245000, "Riverside"},
		{"Downtown studio", "Compact studio a short walk from the station.", 132000, "City Center"},
		{"Family house with garden", "Four bedrooms, double garage and a large back garden.", 410000, "Oakwood"},
	}
	for _, l := range listings {
		var exists bool
		if err := pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM properties WHERE title = $1)`, l.title).Scan(&exists); err != nil {
			log.Fatalf("failed to check listing %q: %v", l.title, err)
		}
		if exists {
			continue
		}
		var id int64
		if err := pool.QueryRow(ctx, `
			INSERT INTO properties (title, description, price, location)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, l.title, l.description, l.price, l.location).Scan(&id); err != nil {
			log.Fatalf("failed to seed listing %q: %v", l.title, err)
		}
		fmt.Printf("seeded listing: id=%d title=%s\n", id, l.title)
	}
	fmt.Println("seed complete")
}
