package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// database/sql keeps a connection opener goroutine per pool.
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	)
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func TestStore_RecordAndRecent(t *testing.T) {
	s := openTestStore(t)

	id, err := s.Record("Length", "Meter", "Kilometer", 1000, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = s.Record("Temperature", "Celsius", "Fahrenheit", 100, 212)
	require.NoError(t, err)

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "Temperature", entries[0].Category)
	assert.Equal(t, "Celsius", entries[0].FromUnit)
	assert.Equal(t, "Fahrenheit", entries[0].ToUnit)
	assert.InDelta(t, 212, entries[0].Result, 1e-9)

	assert.Equal(t, "Length", entries[1].Category)
	assert.False(t, entries[1].CreatedAt.IsZero())
}

func TestStore_RecentLimit(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := s.Record("Weight", "Pound", "Gram", float64(i), float64(i)*453.592)
		require.NoError(t, err)
	}

	entries, err := s.Recent(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.InDelta(t, 4, entries[0].Input, 1e-9)
}

func TestStore_Prune(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 10; i++ {
		_, err := s.Record("Length", "Meter", "Foot", float64(i), float64(i)/0.3048)
		require.NoError(t, err)
	}

	require.NoError(t, s.Prune(4))

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	// The survivors are the newest rows.
	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.InDelta(t, 9, entries[0].Input, 1e-9)
	assert.InDelta(t, 6, entries[3].Input, 1e-9)

	// Unlimited cap is a no-op.
	require.NoError(t, s.Prune(0))
	n, err = s.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestStore_Clear(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Record("Weight", "Kilogram", "Ounce", 1, 35.27396)
	require.NoError(t, err)

	require.NoError(t, s.Clear())

	n, err := s.Count()
	require.NoError(t, err)
	assert.Zero(t, n)

	entries, err := s.Recent(5)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	_, err = s.Record("Length", "Mile", "Kilometer", 1, 1.60934)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	entries, err := s.Recent(5)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Mile", entries[0].FromUnit)
}
