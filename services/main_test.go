package services

import (
	"testing"

	"github.com/GoodHedi/trackinglife/config"
	"github.com/GoodHedi/trackinglife/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points config.DB at a fresh in-memory SQLite database.
// A single connection keeps every query on the same :memory: instance.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.DiaryEntry{},
		&models.Goal{},
	))

	config.DB = db
}

func registerTestUser(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := RegisterUser(username, "secret123", "")
	require.NoError(t, err)
	return user
}

func floatPtr(v float64) *float64 { return &v }
