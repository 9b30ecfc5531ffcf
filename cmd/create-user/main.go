// Command create-user provisions a local user for an auth provider subject.
//
// Usage:
//
//	create-user --external-id=<subject> --email=ada@example.com --username=ada \
//	    [--first-name=Ada] [--last-name=Lovelace] [--credits=10]
//
// Reads DATABASE_* environment variables; DATABASE_DSN is required.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/imagecraft-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/imagecraft-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/imagecraft-backend/internal/config"
	"github.com/heartmarshall/imagecraft-backend/internal/domain"
)

func main() {
	externalID := flag.String("external-id", "", "auth provider subject")
	email := flag.String("email", "", "email address")
	username := flag.String("username", "", "unique username")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	credits := flag.Int("credits", 10, "starting credit balance")
	flag.Parse()

	if *externalID == "" || *email == "" || *username == "" || *credits < 0 {
		fmt.Fprintln(os.Stderr, "Usage: create-user --external-id=<subject> --email=<email> --username=<name> [--credits=N]")
		os.Exit(1)
	}

	var dbCfg config.DatabaseConfig
	if err := cleanenv.ReadEnv(&dbCfg); err != nil {
		log.Fatalf("read database config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	now := time.Now().UTC()
	u, err := userrepo.New(pool).Create(ctx, &domain.User{
		ID:            uuid.New(),
		ExternalID:    *externalID,
		Email:         *email,
		Username:      *username,
		FirstName:     *firstName,
		LastName:      *lastName,
		Plan:          1,
		CreditBalance: *credits,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		log.Fatalf("create user: %v", err)
	}

	fmt.Printf("Created user %s (%s) with %d credits.\n", u.ID, u.Username, u.CreditBalance)
}
