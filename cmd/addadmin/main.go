package main

import (
	"flag"
	"log"

	"colegio-api/app/config"
	"colegio-api/app/database"
	"colegio-api/app/models"
	"colegio-api/app/routes/auth"
)

func main() {
	nombre := flag.String("nombre", "Administrador", "display name")
	email := flag.String("email", "", "login email (required)")
	password := flag.String("password", "", "initial password (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Usage: addadmin -email admin@colegio.edu -password <password> [-nombre Nombre]")
	}

	config.Load()
	db := config.GetDB()
	defer db.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		Nombre:   *nombre,
		Email:    *email,
		Password: hash,
		Rol:      models.RolAdmin,
	}
	if err := database.CreateUser(db, user); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Admin created: %s (%s)", user.Nombre, user.Email)
}
