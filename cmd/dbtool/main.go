package main

import (
	"context"
	"database/sql"
	"fmt"
	"heavy-haul-service/internal/adapters/repositories"
	"heavy-haul-service/internal/config"
	"heavy-haul-service/internal/platform/db"
	"log"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool creates the Postgres schema and loads the truck catalog and state
// permit dataset. TRUCKS_PATH and STATES_PATH override the built-in dataset.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ds, err := loadDataset(config.Get("TRUCKS_PATH", ""), config.Get("STATES_PATH", ""))
	if err != nil {
		log.Fatal(err)
	}

	if err := initAndSeed(ctx, conn, ds); err != nil {
		log.Fatal(err)
	}
}

func loadDataset(trucksPath, statesPath string) (repositories.Dataset, error) {
	if trucksPath == "" && statesPath == "" {
		log.Println("Using built-in reference dataset.")
		return repositories.DefaultDataset()
	}
	if trucksPath == "" || statesPath == "" {
		return repositories.Dataset{}, fmt.Errorf("load dataset: TRUCKS_PATH and STATES_PATH must be set together")
	}

	log.Printf("Loading reference dataset trucks=%s states=%s", trucksPath, statesPath)
	return repositories.LoadDatasetFiles(trucksPath, statesPath)
}

func initAndSeed(ctx context.Context, conn *sql.DB, ds repositories.Dataset) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding reference data...")
	if err := repositories.Seed(ctx, conn, ds); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Printf("Seeding complete trucks=%d states=%d", len(ds.Trucks), len(ds.States))

	return nil
}
