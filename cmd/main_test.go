package main

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-medication-helper/internal/config"
	"github.com/KasumiMercury/primind-medication-helper/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-medication-helper/internal/infra/repository"
)

func TestInitNotifiers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifiers, err := initNotifiers(config.TelegramConfig{}, nil)
	require.NoError(t, err)
	require.Len(t, notifiers, 1)
	assert.Equal(t, "log", notifiers[0].Name())

	notifiers, err = initNotifiers(config.TelegramConfig{}, pubsub.NewMockPublisher(ctrl))
	require.NoError(t, err)
	require.Len(t, notifiers, 2)
	assert.Equal(t, "event", notifiers[1].Name())
}

func TestInitDatabaseSQLite(t *testing.T) {
	db, err := initDatabase(config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		SQLitePath:      filepath.Join(t.TempDir(), "medications.db"),
		ConnMaxLifetime: time.Minute,
		SlowThreshold:   time.Second,
	}, slog.LevelInfo)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, repository.Migrate(db))
	assert.True(t, db.Migrator().HasTable("medications"))
}

func TestInitDatabaseError(t *testing.T) {
	_, err := initDatabase(config.DatabaseConfig{Driver: "mysql"}, slog.LevelInfo)

	assert.Error(t, err)
}
