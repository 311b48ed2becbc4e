package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/pureherbal/storefront-api/config"
	"github.com/pureherbal/storefront-api/internal/domain/entity"
	"github.com/pureherbal/storefront-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@pureherbal.test"
	password := "password123"
	name := "Demo Shopper"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	addresses := []entity.Address{{
		ID:      "11111111-1111-1111-1111-111111111111",
		Type:    "home",
		Street:  "1 Herbal Way",
		City:    "Portland",
		State:   "OR",
		Zip:     "97201",
		Country: "USA",
	}}
	addrJSON, _ := json.Marshal(addresses)

	var id string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, phone, addresses)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash, "+15550100", addrJSON).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)
}
