package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"github.com/juancarlosvazquez23-del/Escudero/internal/auth"
	"github.com/juancarlosvazquez23-del/Escudero/internal/config"
	"github.com/juancarlosvazquez23-del/Escudero/internal/database"
	"github.com/juancarlosvazquez23-del/Escudero/internal/routes"
	"github.com/juancarlosvazquez23-del/Escudero/internal/utils"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()
	if cfg.MongoURI == "" {
		log.Fatal("MONGODB_URI is not set")
	}

	// Connect to MongoDB
	client, err := database.ConnectMongoDB(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Fatal("Failed to disconnect from MongoDB:", err)
		}
	}()

	// Initialize router
	tokens := auth.NewService(cfg.JWTSecret)
	mailer := utils.NewMailer(cfg)
	router := routes.SetupRouter(client, cfg.DatabaseName, tokens, mailer)

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	// Wrap router with CORS
	handler := c.Handler(router)

	// Start server
	log.Printf("🚀 Server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
