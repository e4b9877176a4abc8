package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/marketbay/backend/internal/infrastructure/persistence/models"
)

// setupTestDB opens an in-memory sqlite database with the full schema.
// Each call gets a private database, so tests stay independent.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.UserModel{},
		&models.CategoryModel{},
		&models.CustomerModel{},
		&models.VendorModel{},
		&models.ShopModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
	))

	return db
}
