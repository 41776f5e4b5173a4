package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"codeberg.org/metawork/server/internal/auth"
	"codeberg.org/metawork/server/metawork/users"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// creates (or reuses) a throwaway local account and prints a JWT for it,
// for exercising authenticated endpoints by hand
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	dbConnString := os.Getenv("DATABASE_URL")
	if dbConnString == "" {
		log.Fatal("DATABASE_URL not set")
	}

	dbPool, err := pgxpool.New(context.Background(), dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()

	if err := users.EnsureSchema(ctx, dbPool); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	repo := users.NewRepository(dbPool)

	testEmail := "test@metawork.dev"
	var userID string

	if existing, err := repo.FindByEmail(ctx, testEmail); err == nil {
		userID = existing.ID
		fmt.Printf("Using existing test user (ID: %s)\n", userID)
	} else {
		password := uuid.New().String()

		created, err := repo.Create(ctx, "Test User", testEmail, password)
		if err != nil {
			log.Fatalf("Failed to create test user: %v", err)
		}

		userID = created.ID
		fmt.Printf("Created test user: %s (ID: %s, password: %s)\n", testEmail, userID, password)
	}

	token, err := auth.GenerateJWT(userID)
	if err != nil {
		log.Fatalf("Failed to generate JWT: %v", err)
	}

	fmt.Printf("\nTest JWT Token:\n%s\n\n", token)
	fmt.Printf("Export this token for testing:\nexport TEST_TOKEN=\"%s\"\n", token)
}
