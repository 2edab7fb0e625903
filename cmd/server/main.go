package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/awtad/website/api"
	migrations "github.com/awtad/website/db"
	"github.com/awtad/website/internal/config"
	"github.com/awtad/website/internal/db"
	"github.com/awtad/website/internal/models"
	"github.com/awtad/website/internal/repository/sqlite"
	"golang.org/x/crypto/bcrypt"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	api.SetLogger(logger)

	log.Printf("Starting website server version %s (built at %s)", version, buildTime)

	ctx := context.Background()

	// Open database connection
	conn, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}

	// Apply migrations and default sector/service seeds
	if err := db.Migrate(ctx, conn, migrations.Migrations, migrations.SeedFiles); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	if err := bootstrapAdmin(ctx, conn, cfg, logger); err != nil {
		log.Fatalf("Failed to bootstrap admin: %v", err)
	}

	handler := api.SetupRoutes(cfg, version, buildTime, conn)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close database connection
	if err := conn.Close(); err != nil {
		log.Printf("Error closing DB: %v", err)
	}

	log.Println("Server exited")
}

// bootstrapAdmin creates the first admin account from config when the
// admins table is empty, so a fresh deployment can sign in.
func bootstrapAdmin(ctx context.Context, conn *db.DB, cfg *config.Config, logger *slog.Logger) error {
	repo := sqlite.New(conn, logger)

	n, err := repo.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("no admin account configured; admin API is unreachable until one is created")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	id, err := repo.CreateAdmin(ctx, &models.Admin{
		Name:         cfg.Admin.Name,
		Email:        cfg.Admin.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return err
	}
	logger.Info("bootstrapped admin account", "id", id, "email", cfg.Admin.Email)
	return nil
}
