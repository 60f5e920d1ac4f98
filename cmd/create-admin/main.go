package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/sjpathak2211/ai-dashboard/internal/auth"
	"github.com/sjpathak2211/ai-dashboard/internal/db"
)

// Bootstraps a fresh deployment: the admin account plus the backlog_status
// singleton row the dashboard reads before every submission.
func main() {
	ctx := context.Background()

	database, err := db.New(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@ascendcohealth.com"
	}
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Administrator"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD is not set")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin, err := database.CreateUser(ctx, email, name, "", hash, true)
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	if err := database.SeedBacklogStatus(ctx); err != nil {
		log.Fatalf("Failed to seed backlog status: %v", err)
	}

	fmt.Println("Admin account created")
	fmt.Printf("  Email: %s\n", admin.Email)
	fmt.Printf("  Name:  %s\n", admin.Name)
	fmt.Printf("  ID:    %s\n", admin.ID)
	fmt.Println("Backlog status row seeded")
}
