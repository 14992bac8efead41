// Command seed-admin creates the first super admin account directly in the
// database. Intended for initial provisioning; every later account is created
// through the API by an existing super admin.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	adminspostgres "github.com/elevate-mobility/orderdesk/internal/domains/admins/adapters/persistence/postgres"
	adminsapp "github.com/elevate-mobility/orderdesk/internal/domains/admins/application"
	"github.com/elevate-mobility/orderdesk/internal/domains/admins/domain"
	adminsports "github.com/elevate-mobility/orderdesk/internal/domains/admins/ports"
	"github.com/elevate-mobility/orderdesk/internal/platform/migrations"
	platformpostgres "github.com/elevate-mobility/orderdesk/internal/platform/postgres"
)

func main() {
	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	username := strings.TrimSpace(os.Getenv("SEED_ADMIN_USERNAME"))
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Fatal("SEED_ADMIN_USERNAME and SEED_ADMIN_PASSWORD must be set")
	}
	if err := domain.ValidatePassword(password); err != nil {
		log.Fatalf("rejected seed password: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, cleanup := platformpostgres.ConnectOptional(ctx, os.Getenv("POSTGRES_DSN"), logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot seed admin")
	}
	if err := migrations.Run(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	admin, err := domain.NewAdmin(uuid.NewString(), username, domain.RoleSuperAdmin)
	if err != nil {
		log.Fatalf("invalid seed account: %v", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), adminsapp.HashCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	admin.PasswordHash = string(hash)

	repo := adminspostgres.NewRepository(db)
	if _, err := repo.Create(ctx, admin); err != nil {
		if errors.Is(err, adminsports.ErrUsernameTaken) {
			log.Fatalf("admin %q already exists", username)
		}
		log.Fatalf("failed to create admin: %v", err)
	}
	log.Printf("seeded super admin %q (%s)", username, admin.ID)
}
