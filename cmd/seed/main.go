// Command seed truncates the users and displays tables and fills them
// with demo data: two users (password123) with five displays each.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/asirianni/LatinAd/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type seedUser struct {
	name  string
	email string
}

type seedDisplay struct {
	name        string
	description string
	pricePerDay float64
	width       int
	height      int
	displayType string
	userIndex   int
}

var seedUsers = []seedUser{
	{name: "Usuario Test 1", email: "test1@example.com"},
	{name: "Usuario Test 2", email: "test2@example.com"},
}

var seedDisplays = []seedDisplay{
	{"Display LED 4K - Centro", "Pantalla LED 4K ubicada en el centro comercial", 150.00, 3840, 2160, "indoor", 0},
	{"Display Exterior Times Square", "Pantalla exterior resistente al clima en Times Square", 300.00, 1920, 1080, "outdoor", 0},
	{"Display LED Shopping Mall", "Pantalla LED para centro comercial con alta resolución", 200.00, 2560, 1440, "indoor", 0},
	{"Display Digital Billboard", "Cartelera digital para publicidad exterior", 250.00, 1920, 1080, "outdoor", 0},
	{"Display LED Corporativo", "Pantalla LED para oficinas corporativas", 120.00, 1920, 1080, "indoor", 0},
	{"Display LED Stadium", "Pantalla LED para estadio deportivo", 500.00, 3840, 2160, "outdoor", 1},
	{"Display Interior Oficina", "Pantalla interior para oficinas modernas", 80.00, 1920, 1080, "indoor", 1},
	{"Display LED Aeropuerto", "Pantalla LED para terminal de aeropuerto", 400.00, 2560, 1440, "indoor", 1},
	{"Display Exterior Carretera", "Cartelera exterior en carretera principal", 180.00, 1920, 1080, "outdoor", 1},
	{"Display LED Restaurante", "Pantalla LED para restaurante de lujo", 90.00, 1920, 1080, "indoor", 1},
}

const seedPassword = "password123"

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()

	if err := run(context.Background(), *configPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}

func run(ctx context.Context, configPath string) error {
	_ = godotenv.Load(configPath)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		return fmt.Errorf("invalid POSTGRES_PORT: %w", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		pgPort,
		getEnv("POSTGRES_DB", "latinad"),
	)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer db.Close()

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `TRUNCATE displays, users CASCADE`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	userIDs := make([]uuid.UUID, len(seedUsers))
	for i, u := range seedUsers {
		userIDs[i] = uuid.New()
		_, err := tx.ExecContext(ctx, `
			INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
		`, userIDs[i], u.name, u.email, string(hash))
		if err != nil {
			return fmt.Errorf("insert user %s: %w", u.email, err)
		}
	}

	displayIDs := make([]uuid.UUID, len(seedDisplays))
	for i, d := range seedDisplays {
		displayIDs[i] = uuid.New()
		_, err := tx.ExecContext(ctx, `
			INSERT INTO displays (
				id, name, description, price_per_day,
				resolution_width, resolution_height, type, user_id,
				created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		`, displayIDs[i], d.name, d.description, d.pricePerDay,
			d.width, d.height, d.displayType, userIDs[d.userIndex])
		if err != nil {
			return fmt.Errorf("insert display %s: %w", d.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	fmt.Println("=== TEST DATA CREATED ===")
	for i, u := range seedUsers {
		fmt.Printf("USER %d:\n", i+1)
		fmt.Printf("  Email: %s\n", u.email)
		fmt.Printf("  Password: %s\n", seedPassword)
		fmt.Printf("  ID: %s\n\n", userIDs[i])
	}

	fmt.Println("=== DISPLAYS CREATED ===")
	for i, d := range seedDisplays {
		fmt.Printf("  - ID: %s | %s | %s | $%.2f (%s)\n",
			displayIDs[i], d.name, d.displayType, d.pricePerDay, seedUsers[d.userIndex].email)
	}

	return nil
}
