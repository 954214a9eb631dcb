package platform

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svilenkov/healthconnect/internal/kvstore"
	"github.com/svilenkov/healthconnect/internal/logging"

	_ "modernc.org/sqlite"
)

func setupLocal(t *testing.T, input string) (*Local, kvstore.Store, *bytes.Buffer) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)

	kv := kvstore.NewSQLiteStore(db)
	out := &bytes.Buffer{}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	l := NewLocal(kv, log, LocalOptions{
		OS:  "android",
		In:  bufio.NewReader(strings.NewReader(input)),
		Out: out,
	})
	return l, kv, out
}

func TestRequestPermission_PersistsAnswer(t *testing.T) {
	l, _, _ := setupLocal(t, "y\n")
	ctx := context.Background()

	status, err := l.RequestPermission(ctx, PermissionNotifications)
	require.NoError(t, err)
	require.Equal(t, StatusGranted, status)

	// a later check must see the stored grant without prompting again
	status, err = l.CheckPermission(ctx, PermissionNotifications)
	require.NoError(t, err)
	assert.Equal(t, StatusGranted, status)
}

func TestEnsureDefaultChannel_WritesChannelSettings(t *testing.T) {
	l, kv, _ := setupLocal(t, "")
	ctx := context.Background()

	require.NoError(t, l.EnsureDefaultChannel(ctx))

	raw, err := kv.Get(ctx, channelKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"name":"default"`)
}

func TestEnsureDefaultChannel_CancelledContext_WritesNothing(t *testing.T) {
	l, kv, _ := setupLocal(t, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := l.EnsureDefaultChannel(ctx)
	require.ErrorIs(t, err, context.Canceled)

	raw, getErr := kv.Get(context.Background(), channelKey)
	require.NoError(t, getErr)
	assert.Nil(t, raw)
}
