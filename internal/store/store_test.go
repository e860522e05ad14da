package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"company_crud/internal/db"
	"company_crud/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.OpenSQLite(filepath.Join(t.TempDir(), "store_test.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(gdb))
	return gdb
}

func TestRepository_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[models.Company](openTestDB(t), "Departments")

	company := models.Company{Name: "Acme"}
	require.NoError(t, repo.Save(ctx, &company))
	require.NotZero(t, company.ID)

	got, err := repo.Get(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
	assert.Empty(t, got.Departments)

	got.Name = "Acme Corp"
	require.NoError(t, repo.Save(ctx, &got))
	got, err = repo.Get(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.Name)

	require.NoError(t, repo.Delete(ctx, company.ID))
	_, err = repo.Get(ctx, company.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting again is tolerated
	require.NoError(t, repo.Delete(ctx, company.ID))
}

func TestRepository_ListPreservesInsertOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[models.Manager](openTestDB(t))

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	for _, name := range []string{"Ann", "Bob", "Cid"} {
		m := models.Manager{Name: name, Email: name + "@example.com"}
		require.NoError(t, repo.Save(ctx, &m))
	}

	rows, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Ann", rows[0].Name)
	assert.Equal(t, "Cid", rows[2].Name)
}

func TestRepository_SaveDoesNotWriteAssociations(t *testing.T) {
	ctx := context.Background()
	gdb := openTestDB(t)
	companies := NewRepository[models.Company](gdb)
	departments := NewRepository[models.Department](gdb, "Company")

	acme := models.Company{Name: "Acme"}
	require.NoError(t, companies.Save(ctx, &acme))

	renamed := acme
	renamed.Name = "Changed through child"
	dept := models.Department{Name: "Eng", CompanyID: acme.ID, Company: &renamed}
	require.NoError(t, departments.Save(ctx, &dept))

	got, err := companies.Get(ctx, acme.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)

	d, err := departments.Get(ctx, dept.ID)
	require.NoError(t, err)
	require.NotNil(t, d.Company)
	assert.Equal(t, "Acme", d.Company.Name)
}

func TestRepository_NonPositiveIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[models.Company](openTestDB(t))

	for _, id := range []int64{0, -1} {
		_, err := repo.Get(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, repo.Delete(ctx, id))
	}
}
