// Package history persists the append-only export audit log and the capped
// snapshot cache.
//
// Storage is keyed: each key maps to one JSON file under the data
// directory. State loads once at startup, mutates only through the append
// operations, and persists after every successful mutation. A missing or
// malformed payload is treated as empty, never as a fatal error.
package history

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"tenderpulse/pkg/contracts/domain"
)

const (
	// HistoryKey is the storage key for the export audit log.
	HistoryKey = "downloadHistory"
	// SnapshotsKey is the storage key for the sample snapshot cache.
	SnapshotsKey = "savedExports"

	// MaxHistoryEntries caps the audit log; the oldest entry is evicted
	// first once the cap is exceeded.
	MaxHistoryEntries = 50
	// MaxSnapshots caps the snapshot cache, independently of the log.
	MaxSnapshots = 10
	// SnapshotSampleRows is how many leading export rows a snapshot keeps.
	SnapshotSampleRows = 5
)

// Store owns the persisted export history and snapshot cache.
type Store struct {
	dir    string
	logger *slog.Logger

	mu        sync.Mutex
	history   []domain.HistoryEntry
	snapshots []domain.ExportSnapshot
}

// NewStore loads existing state from the data directory and returns a ready
// store. The directory is created if absent.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	s := &Store{
		dir:    dir,
		logger: logger.With(slog.String("component", "history_store")),
	}
	s.load()
	return s, nil
}

// load reads both keys. Unreadable or unparsable payloads reset to empty.
func (s *Store) load() {
	if err := readKey(s.keyPath(HistoryKey), &s.history); err != nil {
		s.logger.Warn("Resetting download history",
			slog.String("key", HistoryKey),
			slog.String("error", err.Error()))
		s.history = nil
	}
	if err := readKey(s.keyPath(SnapshotsKey), &s.snapshots); err != nil {
		s.logger.Warn("Resetting saved exports",
			slog.String("key", SnapshotsKey),
			slog.String("error", err.Error()))
		s.snapshots = nil
	}
	s.logger.Info("History store loaded",
		slog.Int("history_entries", len(s.history)),
		slog.Int("snapshots", len(s.snapshots)))
}

// Append prepends the entry (newest first), truncates to the cap and
// persists the result.
func (s *Store) Append(entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append([]domain.HistoryEntry{entry}, s.history...)
	if len(s.history) > MaxHistoryEntries {
		s.history = s.history[:MaxHistoryEntries]
	}
	if err := writeKey(s.keyPath(HistoryKey), s.history); err != nil {
		return fmt.Errorf("failed to persist %s: %w", HistoryKey, err)
	}
	return nil
}

// AppendSnapshot appends the snapshot and truncates to the most recent
// MaxSnapshots before persisting.
func (s *Store) AppendSnapshot(snap domain.ExportSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshots = append(s.snapshots, snap)
	if len(s.snapshots) > MaxSnapshots {
		s.snapshots = s.snapshots[len(s.snapshots)-MaxSnapshots:]
	}
	if err := writeKey(s.keyPath(SnapshotsKey), s.snapshots); err != nil {
		return fmt.Errorf("failed to persist %s: %w", SnapshotsKey, err)
	}
	return nil
}

// Entries returns the history log, newest first.
func (s *Store) Entries() []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// RecentSnapshots returns the snapshot cache, newest last.
func (s *Store) RecentSnapshots() []domain.ExportSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ExportSnapshot, len(s.snapshots))
	copy(out, s.snapshots)
	return out
}

// Len returns the current history length.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

func (s *Store) keyPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func readKey(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, out)
}

func writeKey(path string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
