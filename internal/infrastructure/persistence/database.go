package persistence

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/marketbay/backend/internal/infrastructure/config"
)

// Database wraps the GORM handle and owns the connection pool lifecycle
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens a connection with SQL logging silenced; the
// migration CLI uses this form
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	return NewDatabaseWithCustomLogger(cfg, logger.Default.LogMode(logger.Silent))
}

// NewDatabaseWithCustomLogger opens a connection using the supplied
// GORM logger, normally the zap-backed bridge
func NewDatabaseWithCustomLogger(cfg *config.DatabaseConfig, gormLogger logger.Interface) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	pool, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	pool.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)

	if err := pool.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Database{DB: db}, nil
}

// Close releases the connection pool
func (d *Database) Close() error {
	pool, err := d.DB.DB()
	if err != nil {
		return err
	}
	return pool.Close()
}
