package history

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenderpulse/pkg/contracts/domain"
)

func newTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := NewStore(dir, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
	require.NoError(t, err)
	return s
}

func TestAppendNewestFirst(t *testing.T) {
	s := newTestStore(t, t.TempDir())

	require.NoError(t, s.Append(domain.HistoryEntry{ID: 1, Filename: "tenders_a.xlsx"}))
	require.NoError(t, s.Append(domain.HistoryEntry{ID: 2, Filename: "tenders_b.xlsx"}))
	require.NoError(t, s.Append(domain.HistoryEntry{ID: 3, Filename: "tenders_c.csv"}))

	entries := s.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, int64(3), entries[0].ID)
	assert.Equal(t, int64(2), entries[1].ID)
	assert.Equal(t, int64(1), entries[2].ID)
}

func TestAppendEvictsOldestPastCap(t *testing.T) {
	s := newTestStore(t, t.TempDir())

	for i := 1; i <= MaxHistoryEntries+1; i++ {
		require.NoError(t, s.Append(domain.HistoryEntry{
			ID:       int64(i),
			Filename: fmt.Sprintf("tenders_%d.xlsx", i),
		}))
	}

	entries := s.Entries()
	require.Len(t, entries, MaxHistoryEntries)
	assert.Equal(t, int64(MaxHistoryEntries+1), entries[0].ID, "newest entry survives")
	assert.Equal(t, int64(2), entries[len(entries)-1].ID, "oldest entry is evicted")
}

func TestAppendSnapshotCap(t *testing.T) {
	s := newTestStore(t, t.TempDir())

	for i := 1; i <= MaxSnapshots+3; i++ {
		require.NoError(t, s.AppendSnapshot(domain.ExportSnapshot{
			Filename: fmt.Sprintf("tenders_%d.xlsx", i),
			Count:    i,
		}))
	}

	snaps := s.RecentSnapshots()
	require.Len(t, snaps, MaxSnapshots)
	assert.Equal(t, 4, snaps[0].Count, "oldest snapshots drop off the front")
	assert.Equal(t, MaxSnapshots+3, snaps[len(snaps)-1].Count)
}

func TestReopenRestoresState(t *testing.T) {
	dir := t.TempDir()
	s := newTestStore(t, dir)
	require.NoError(t, s.Append(domain.HistoryEntry{ID: 42, Filename: "tenders_x.csv", Count: 9}))
	require.NoError(t, s.AppendSnapshot(domain.ExportSnapshot{Filename: "tenders_x.csv", Count: 9}))

	reopened := newTestStore(t, dir)

	entries := reopened.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(42), entries[0].ID)
	assert.Equal(t, 9, entries[0].Count)
	require.Len(t, reopened.RecentSnapshots(), 1)
}

func TestMalformedPayloadResetsToEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, HistoryKey+".json"), []byte("{not json"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, SnapshotsKey+".json"), []byte(`"wrong shape"`), 0644))

	s := newTestStore(t, dir)

	assert.Empty(t, s.Entries())
	assert.Empty(t, s.RecentSnapshots())

	require.NoError(t, s.Append(domain.HistoryEntry{ID: 1, Filename: "tenders_y.xlsx"}))
	assert.Equal(t, 1, s.Len())
}

func TestMissingFilesStartEmpty(t *testing.T) {
	s := newTestStore(t, t.TempDir())

	assert.Zero(t, s.Len())
	assert.Empty(t, s.Entries())
	assert.Empty(t, s.RecentSnapshots())
}
