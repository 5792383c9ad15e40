package postgres

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDBConfig holds the connection settings of the integration database.
type testDBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func getTestDBConfig() testDBConfig {
	return testDBConfig{
		Host:     os.Getenv("TEST_DB_HOST"),
		Port:     getEnv("TEST_DB_PORT", "5432"),
		User:     getEnv("TEST_DB_USER", "postgres"),
		Password: getEnv("TEST_DB_PASSWORD", "postgres"),
		DBName:   getEnv("TEST_DB_NAME", "evacuation_test"),
		SSLMode:  getEnv("TEST_DB_SSLMODE", "disable"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// openTestDB connects to the integration database, migrates it and empties every table.
// Tests are skipped when TEST_DB_HOST is not set.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := getTestDBConfig()
	if cfg.Host == "" {
		t.Skip("TEST_DB_HOST not set, skipping postgres integration test")
	}

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	require.NoError(t, sqlDB.PingContext(ctx))
	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, db.WithContext(ctx).Exec(
		"TRUNCATE notifications, evacuations, stages, trips, travelers, locations, cities, countries RESTART IDENTITY CASCADE",
	).Error)

	return db
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
