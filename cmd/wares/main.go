package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/wares-dev/wares/db"
	"github.com/wares-dev/wares/internal/config"
	"github.com/wares-dev/wares/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	conn, err := db.Connect(cfg.DSN())

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := db.EnsureFirstSuperuser(context.Background(), conn, cfg); err != nil {
		log.Fatalf("Failed to seed first superuser: %v", err)
	}

	r := router.NewRouter(conn, cfg)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
