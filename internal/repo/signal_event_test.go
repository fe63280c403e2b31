package repo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/KNICEX/fxsignal/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "events.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, InitTables(db))
	return db
}

func TestSignalEventRepo(t *testing.T) {
	r := NewSignalEventRepo(newTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

	for i, ev := range []entity.SignalEvent{
		{EventId: "a", Kind: "new_signal", CurrencyPair: "EUR/USD", Action: "Pending", FiredAt: base},
		{EventId: "b", Kind: "new_signal", CurrencyPair: "GBP/USD", Action: "Buy", FiredAt: base.Add(time.Minute)},
		{EventId: "c", Kind: "update_signal", CurrencyPair: "EUR/USD", Action: "Buy", Price: "1.3952", FiredAt: base.Add(2 * time.Minute)},
	} {
		id, err := r.Create(ctx, ev)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), id)
	}

	events, err := r.FindByPair(ctx, "EUR/USD", 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "c", events[0].EventId)
	assert.Equal(t, "1.3952", events[0].Price)
	assert.Equal(t, "a", events[1].EventId)

	events, err = r.FindByPair(ctx, "EUR/USD", 1)
	require.NoError(t, err)
	assert.Len(t, events, 1)

	_, err = r.Create(ctx, entity.SignalEvent{EventId: "a", CurrencyPair: "EUR/USD"})
	assert.Error(t, err, "event ids are unique")
}
