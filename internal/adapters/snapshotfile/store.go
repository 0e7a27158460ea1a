package snapshotfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/GuillaumeBer/cryptoTrack/internal/domain"
)

// Store persists the catalog snapshot as a single JSON document. Writes go to
// a temp file in the same directory followed by a rename, so readers never
// observe a partially written snapshot and a failed write leaves the previous
// file intact.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Write(snapshot domain.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", domain.ErrSnapshotPersist, err)
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create dir %q: %v", domain.ErrSnapshotPersist, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", domain.ErrSnapshotPersist, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write temp file: %v", domain.ErrSnapshotPersist, err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %v", domain.ErrSnapshotPersist, err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: replace %q: %v", domain.ErrSnapshotPersist, s.path, err)
	}
	return nil
}

func (s *Store) Read() (domain.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Snapshot{}, domain.ErrSnapshotNotFound
		}
		return domain.Snapshot{}, fmt.Errorf("read snapshot %q: %w", s.path, err)
	}

	var snapshot domain.Snapshot
	if err = json.Unmarshal(data, &snapshot); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", domain.ErrSnapshotCorrupt, err)
	}
	return snapshot, nil
}
