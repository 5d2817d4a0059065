package main

import (
	"context"
	"flag"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/juancarlosvazquez23-del/Escudero/internal/config"
	"github.com/juancarlosvazquez23-del/Escudero/internal/database"
	"github.com/juancarlosvazquez23-del/Escudero/internal/models"
)

// Seeds the admin account the API authenticates against. Run once before
// starting the server.
func main() {
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	cfg := config.LoadConfig()
	if cfg.MongoURI == "" {
		log.Fatal("MONGODB_URI is not set")
	}

	client, err := database.ConnectMongoDB(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), 10)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.Admin{
		Username: *username,
		Password: string(hashed),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Database(cfg.DatabaseName).Collection("admins").InsertOne(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Admin %q created", *username)
}
