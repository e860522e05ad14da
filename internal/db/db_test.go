package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company_crud/internal/config"
	"company_crud/internal/models"
)

func TestConnectSQLiteAndMigrate(t *testing.T) {
	cfg := config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "db_test.db"),
	}

	gdb, err := Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(gdb))
	require.NoError(t, Ping(context.Background(), gdb))

	for _, m := range models.All() {
		assert.True(t, gdb.Migrator().HasTable(m), "missing table for %T", m)
	}
}
