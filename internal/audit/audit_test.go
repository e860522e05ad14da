package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company_crud/internal/db"
)

func newTestRecorder(t *testing.T) *Recorder {
	t.Helper()
	gdb, err := db.OpenSQLite(filepath.Join(t.TempDir(), "audit_test.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(gdb))
	return NewRecorder(gdb)
}

func TestRecordStoresMetadata(t *testing.T) {
	ctx := context.Background()
	rec := newTestRecorder(t)

	require.NoError(t, rec.Record(ctx, Entry{
		Action:     "company.create",
		EntityType: "company",
		EntityID:   1,
		Metadata:   map[string]string{"name": "Acme"},
		IP:         "10.0.0.1",
		RequestID:  "req-1",
	}))

	page, err := rec.List(ctx, Query{})
	require.NoError(t, err)
	require.Len(t, page.Logs, 1)
	assert.Nil(t, page.NextCursor)

	got := page.Logs[0]
	assert.Equal(t, "company.create", got.Action)
	assert.Equal(t, int64(1), got.EntityID)
	assert.Equal(t, "req-1", got.RequestID)

	var meta map[string]string
	require.NoError(t, json.Unmarshal(got.Metadata, &meta))
	assert.Equal(t, "Acme", meta["name"])
}

func TestListPagesNewestFirst(t *testing.T) {
	ctx := context.Background()
	rec := newTestRecorder(t)

	for i := 1; i <= 5; i++ {
		require.NoError(t, rec.Record(ctx, Entry{Action: fmt.Sprintf("team.update.%d", i), EntityType: "team", EntityID: int64(i)}))
	}

	first, err := rec.List(ctx, Query{Limit: 2})
	require.NoError(t, err)
	require.Len(t, first.Logs, 2)
	assert.Equal(t, int64(5), first.Logs[0].EntityID)
	assert.Equal(t, int64(4), first.Logs[1].EntityID)
	require.NotNil(t, first.NextCursor)

	second, err := rec.List(ctx, Query{Limit: 2, AfterID: *first.NextCursor})
	require.NoError(t, err)
	require.Len(t, second.Logs, 2)
	assert.Equal(t, int64(3), second.Logs[0].EntityID)

	last, err := rec.List(ctx, Query{Limit: 2, AfterID: *second.NextCursor})
	require.NoError(t, err)
	require.Len(t, last.Logs, 1)
	assert.Nil(t, last.NextCursor)
}

func TestListSearch(t *testing.T) {
	ctx := context.Background()
	rec := newTestRecorder(t)

	require.NoError(t, rec.Record(ctx, Entry{Action: "company.create", EntityType: "company", EntityID: 1}))
	require.NoError(t, rec.Record(ctx, Entry{Action: "manager.delete", EntityType: "manager", EntityID: 2}))

	page, err := rec.List(ctx, Query{Search: " manager "})
	require.NoError(t, err)
	require.Len(t, page.Logs, 1)
	assert.Equal(t, "manager.delete", page.Logs[0].Action)
}
