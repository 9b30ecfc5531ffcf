// Command grant-credits adds credits to a user's balance and records the
// grant in the ledger.
//
// Usage:
//
//	grant-credits --user=<uuid> --amount=10
//	grant-credits --external-id=<auth subject> --amount=10
//
// Reads DATABASE_* environment variables; DATABASE_DSN is required.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/imagecraft-backend/internal/adapter/postgres"
	creditrepo "github.com/heartmarshall/imagecraft-backend/internal/adapter/postgres/credit"
	userrepo "github.com/heartmarshall/imagecraft-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/imagecraft-backend/internal/config"
	"github.com/heartmarshall/imagecraft-backend/internal/domain"
	"github.com/heartmarshall/imagecraft-backend/internal/service/credit"
)

// nopRecorder discards ledger metrics.
type nopRecorder struct{}

func (nopRecorder) CreditAdjusted(domain.CreditReason, int) {}
func (nopRecorder) CreditRejected(domain.CreditReason)      {}

func main() {
	userFlag := flag.String("user", "", "ID of the user to credit")
	externalID := flag.String("external-id", "", "auth provider subject of the user to credit")
	amount := flag.Int("amount", 0, "number of credits to grant (positive)")
	flag.Parse()

	if (*userFlag == "") == (*externalID == "") || *amount <= 0 {
		fmt.Fprintln(os.Stderr, "Usage: grant-credits (--user=<uuid> | --external-id=<subject>) --amount=N")
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

	userID, err := resolveUser(ctx, userrepo.New(pool), *userFlag, *externalID)
	if err != nil {
		log.Fatalf("resolve user: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := credit.NewService(logger, creditrepo.New(pool), postgres.NewTxManager(pool), nopRecorder{})

	balance, err := svc.Adjust(ctx, userID, *amount, domain.CreditReasonGrant)
	if err != nil {
		log.Fatalf("grant credits: %v", err)
	}

	fmt.Printf("Granted %d credits to %s. Balance: %d.\n", *amount, userID, balance)
}

func resolveUser(ctx context.Context, users *userrepo.Repo, id, externalID string) (uuid.UUID, error) {
	if externalID != "" {
		u, err := users.GetByExternalID(ctx, externalID)
		if err != nil {
			return uuid.Nil, err
		}
		return u.ID, nil
	}

	userID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id %q: %w", id, err)
	}
	ok, err := users.Exists(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return userID, nil
}
