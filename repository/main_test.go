package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/models/courses"
	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/models/users"
)

// setupTestDB opens a fresh in-memory sqlite database with the full schema.
// A single connection keeps every query on the same in-memory store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&users.User{}, &courses.Lesson{}, &courses.Progress{})
	require.NoError(t, err)

	return db
}
