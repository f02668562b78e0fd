package prefix

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"winepref/internal/wine"
)

// Manager creates and removes prefixes under a root directory.
type Manager struct {
	dir    string
	runner *wine.Runner
}

// NewManager creates a manager for prefixes under prefixDir.
func NewManager(prefixDir string, runner *wine.Runner) *Manager {
	return &Manager{dir: prefixDir, runner: runner}
}

// Create makes a new prefix directory and runs winecfg in it. If winecfg
// exits non-zero or the wait is interrupted, the directory is removed
// again so the registry never sees a half-configured prefix.
func (m *Manager) Create(ctx context.Context, name string, reg Registry) error {
	if _, ok := reg[name]; ok {
		return fmt.Errorf("Prefix '%s' already exists", name)
	}
	if !ValidName(name) {
		return fmt.Errorf("Invalid prefix name '%s'. Name must match %s", name, NamePattern)
	}

	path := filepath.Join(m.dir, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create prefix directory: %w", err)
	}

	if err := m.runner.Configure(ctx, path); err != nil {
		os.RemoveAll(path)
		return err
	}
	if ctx.Err() != nil {
		// winecfg may exit cleanly on its own SIGINT; the interrupt
		// still aborts the creation.
		os.RemoveAll(path)
		return fmt.Errorf("interrupted while configuring prefix '%s'", name)
	}
	return nil
}

// Remove deletes the named prefix directory recursively.
func (m *Manager) Remove(name string, reg Registry) error {
	path, err := reg.Resolve(name)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove prefix '%s': %w", name, err)
	}
	return nil
}
