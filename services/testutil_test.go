package services

import (
	"testing"

	"github.com/Kweyu/resto-api/models"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema. The
// pool is pinned to one connection so every query sees the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.User{},
	))
	return db
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func burger() *models.MenuItem {
	return &models.MenuItem{
		Name:               "Burger",
		Description:        "House burger",
		Price:              money("9.50"),
		Category:           models.CategoryMainCourse,
		IsAvailable:        true,
		PreparationMinutes: 10,
	}
}

func fries() *models.MenuItem {
	return &models.MenuItem{
		Name:        "Fries",
		Price:       money("3.00"),
		Category:    models.CategorySides,
		IsAvailable: true,
	}
}
