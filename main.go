package main

import (
	"log"
	"net/http"
	"os"

	"hrms/config"
	"hrms/database"
	"hrms/handlers"
	"hrms/middleware"
	"hrms/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Init(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	store := storage.New(db)
	auth := middleware.NewAuth(cfg.JWTSecret, cfg.JWTExpiration, store)
	router := handlers.NewRouter(store, auth, cfg.UploadDir, cfg.AssetsDir)

	log.Printf("Server starting on port %s", cfg.ServerPort)
	log.Printf("Default admin credentials: admin / admin")
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, router))
}
