// Dev utility: creates (or reuses) a test account and prints a JWT for
// exercising authenticated endpoints with curl.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"codeberg.org/codesage/server/codesage/users"
	"codeberg.org/codesage/server/internal/auth"
)

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
	userRepo := users.NewRepository(dbPool)

	testEmail := "test@codesage.dev"

	user, err := userRepo.FindByEmail(ctx, testEmail)
	if err != nil {
		hash, err := auth.HashPassword("test-password-123")
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		user, err = userRepo.Create(ctx, testEmail, "Test User", hash)
		if err != nil {
			log.Fatalf("Failed to create test user: %v", err)
		}

		log.Printf("Created test user %s", user.ID)
	}

	token, err := auth.GenerateJWT(user.ID, user.Email)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Println(token)
}
