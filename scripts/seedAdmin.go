package main

import (
	"log"
	"os"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"

	"golang.org/x/crypto/bcrypt"
)

// Seeds the initial admin account. Run once after the database is up:
//
//	ADMIN_EMAIL=admin@example.com ADMIN_PASSWORD=changeme go run ./scripts
func main() {
	config.LoadConfig()
	database.ConnectDb()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	var existing models.User
	if err := database.Database.Db.Where("email = ? AND is_deleted = ?", email, false).First(&existing).Error; err == nil {
		log.Printf("Admin %s already exists (id=%d), nothing to do", email, existing.ID)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.User{
		Name:            "Administrator",
		Email:           email,
		Password:        string(hashed),
		Role:            "ADMIN",
		IsEmailVerified: true,
	}

	if err := database.Database.Db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Admin %s created with id %d", email, admin.ID)

	token, err := middleware.GenerateJWT(admin.ID, admin.Name, admin.Role, admin.Email)
	if err != nil {
		log.Fatalf("Admin created but token generation failed: %v", err)
	}
	log.Printf("Initial token (valid 24h): %s", token)
}
