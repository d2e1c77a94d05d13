// Command migrate applies the SQL migrations without starting the API
// server. It is meant for postgres deployments; SQLite deployments are
// auto-migrated by the server at startup.
package main

import (
	"os"

	"salonbook/internal/database"
	"salonbook/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()
	log := logger.Get()

	dbConfig, err := database.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load database configuration: %v", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		log.Fatalf("Failed to create database manager: %v", err)
	}

	if err := dbManager.Migrate(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Info("Migrations applied")
}
