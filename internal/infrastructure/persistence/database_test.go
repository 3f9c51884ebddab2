package persistence

import (
	"context"
	"testing"

	"github.com/acme/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		driver string
		name   string
	}{
		{"", "postgres"},
		{"postgres", "postgres"},
		{"sqlite", "sqlite"},
	}
	for _, tt := range tests {
		d, err := Dialector(&config.DatabaseConfig{Driver: tt.driver, Host: "localhost", SQLitePath: ":memory:"})
		require.NoError(t, err, tt.driver)
		assert.Equal(t, tt.name, d.Name())
	}

	_, err := Dialector(&config.DatabaseConfig{Driver: "mysql"})
	assert.Error(t, err)
}

func TestDatabase_SQLiteLifecycle(t *testing.T) {
	database, err := NewDatabase(&config.DatabaseConfig{Driver: "sqlite", SQLitePath: ":memory:"}, zap.NewNop(), "debug")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(database.DB))

	stats, err := database.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MaxOpenConnections)

	ctx := context.Background()
	err = database.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Exec("INSERT INTO system_configurations (id, created_at, updated_at, version, system_currency, accepted_currencies) VALUES ('c0ffee00-0000-0000-0000-000000000001', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP, 1, 'EUR', 'EUR')").Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, database.DB.Table("system_configurations").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	require.NoError(t, database.Close())
	assert.Error(t, database.Ping(ctx))
}
