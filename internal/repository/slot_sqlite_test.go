package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shenikar/vehicle_gatepass/internal/models"
	"github.com/shenikar/vehicle_gatepass/pkg/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteSlot_CompareAndSwap(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.NewSQLiteDB(ctx, filepath.Join(t.TempDir(), "data", "gatepass.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	slot := NewSQLiteSlot(db, ViolationsSlot)

	payload, version, err := slot.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, payload)
	assert.Zero(t, version)

	version, err = slot.Save(ctx, []byte(`[]`), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	// Повторное создание и устаревшая версия - конфликт
	_, err = slot.Save(ctx, []byte(`[]`), 0)
	assert.ErrorIs(t, err, ErrVersionConflict)

	version, err = slot.Save(ctx, []byte(`{"version":1,"records":[]}`), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	_, err = slot.Save(ctx, []byte(`[]`), 1)
	assert.ErrorIs(t, err, ErrVersionConflict)

	payload, version, err = slot.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
	assert.JSONEq(t, `{"version":1,"records":[]}`, string(payload))
}

func TestSQLiteStores_PersistAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "gatepass.db")

	db, err := sqlite.NewSQLiteDB(ctx, path)
	require.NoError(t, err)
	stores := NewStores(SQLiteSlots(db), newTestLogger(), 0)
	p := newPass("VIS001")
	_, err = stores.Passes.Append(ctx, p)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reopened, err := sqlite.NewSQLiteDB(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })
	stores = NewStores(SQLiteSlots(reopened), newTestLogger(), 0)

	assert.Equal(t, []models.IssuedPass{p}, stores.Passes.LoadAll(ctx))
	assert.Empty(t, stores.Violations.LoadAll(ctx))
}
