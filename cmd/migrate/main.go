package main

import (
	"log"

	"colegio-api/app/config"
	"colegio-api/app/database"
)

func main() {
	log.Println("Running migrations...")

	config.Load()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully")
}
