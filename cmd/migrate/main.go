package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/marketbay/backend/internal/infrastructure/config"
	"github.com/marketbay/backend/internal/infrastructure/logger"
	"github.com/marketbay/backend/internal/infrastructure/persistence"
	"github.com/marketbay/backend/internal/infrastructure/persistence/models"
)

func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	switch command {
	case "up":
		log.Info("Applying schema migrations",
			zap.String("database", cfg.Database.DBName),
		)
		if err := db.DB.AutoMigrate(allModels()...); err != nil {
			log.Fatal("Migration failed", zap.Error(err))
		}
		log.Info("Schema is up to date")

	case "drop":
		// For safety, require explicit confirmation
		confirm := false
		for _, arg := range args[1:] {
			if arg == "-confirm" || arg == "--confirm" {
				confirm = true
				break
			}
		}
		if !confirm {
			log.Fatal("Drop cancelled. Use 'migrate drop -confirm' to confirm.")
		}
		log.Warn("Dropping all tables")
		if err := db.DB.Migrator().DropTable(allModels()...); err != nil {
			log.Fatal("Drop failed", zap.Error(err))
		}
		log.Info("All tables dropped")

	default:
		log.Error("Unknown command", zap.String("command", command))
		printUsage()
		os.Exit(1)
	}
}

// allModels lists every persisted aggregate, in dependency order
func allModels() []any {
	return []any{
		&models.UserModel{},
		&models.CategoryModel{},
		&models.CustomerModel{},
		&models.VendorModel{},
		&models.ShopModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
	}
}

func printUsage() {
	fmt.Println(`MarketBay Database Migration Tool

Usage:
  migrate [flags] <command>

Commands:
  up              Create or update all tables to match the models
  drop -confirm   Drop all tables (DANGEROUS)

Flags:
  -log-level string   Log level: debug, info, warn, error (default: info)

Configuration is read from config.toml and MARKET_-prefixed
environment variables, the same as the server.`)
}
