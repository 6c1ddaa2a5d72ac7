// Package snapfile stores table snapshots on disk.
package snapfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lox/holdemcore/holdem"
)

// Write stores the snapshot of s at path. The file is written under a
// temporary name in the same directory and renamed into place, so readers
// see either the previous snapshot or the new one.
func Write(path string, s *holdem.GameState) error {
	data, err := holdem.Snapshot(s)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to rename snapshot: %w", err)
	}
	committed = true
	return nil
}

// Read loads and restores the snapshot at path.
func Read(path string) (*holdem.GameState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	s, err := holdem.Restore(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
