// Manual catalog seeding.
//
// Seeding runs automatically on first startup when the subjects table
// is empty; this script exists for re-running it after a manual wipe.
//
// Usage: go run scripts/seed_catalog.go
package main

import (
	"log"
	"studybuddy_backend/internal/config"
	"studybuddy_backend/pkg/database"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if _, err := database.InitDB(&cfg.Database); err != nil {
		log.Fatalf("init database: %v", err)
	}

	log.Println("catalog seed finished")
}
