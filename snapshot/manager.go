package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/atomlet/castor/rawvec"
)

// FileExtension is appended to every snapshot file the Manager writes.
const FileExtension = ".castor"

var (
	// ErrInvalidName is returned for snapshot names that are empty or
	// contain path separators.
	ErrInvalidName = errors.New("invalid snapshot name")

	// ErrSnapshotNotFound is returned by Load when no snapshot with the
	// given name exists in the manager's directory.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithDefaultCodec sets the codec used by Save and SaveAll.
func WithDefaultCodec(c Codec) ManagerOption {
	return func(m *Manager) {
		m.codec = c
	}
}

// WithLogger sets the structured logger. Logging is disabled by default.
func WithLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// Manager persists named vectors as snapshot files in one directory.
//
// Saves are atomic: the snapshot is written to a temporary file in the
// same directory and renamed into place. The Manager may be used from
// multiple goroutines as long as every individual vector is touched by
// at most one of them.
type Manager struct {
	dir    string
	codec  Codec
	logger *slog.Logger
}

// NewManager creates a manager rooted at dir, creating the directory if
// needed.
func NewManager(dir string, optFns ...ManagerOption) (*Manager, error) {
	m := &Manager{
		dir:    dir,
		codec:  CodecNone,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range optFns {
		fn(m)
	}

	if !m.codec.valid() {
		return nil, &ErrInvalidCodec{Codec: uint8(m.codec)}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}

	return m, nil
}

func validName(name string) bool {
	return name != "" && !strings.ContainsAny(name, `/\`) && name == filepath.Base(name)
}

func (m *Manager) path(name string) string {
	return filepath.Join(m.dir, name+FileExtension)
}

// Save writes v to <dir>/<name>.castor, replacing any previous snapshot
// with that name atomically.
func (m *Manager) Save(ctx context.Context, name string, v *rawvec.Vector) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	tmp, err := os.CreateTemp(m.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}

	if err := Write(tmp, v, WithCodec(m.codec)); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), m.path(name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename snapshot: %w", err)
	}

	m.logger.InfoContext(ctx, "snapshot saved",
		"name", name,
		"count", v.Count(),
		"object_size", v.ObjectSize(),
	)

	return nil
}

// SaveAll saves every vector in vectors concurrently, one goroutine per
// snapshot. The first failure cancels the remaining saves; snapshots
// already renamed into place are kept.
func (m *Manager) SaveAll(ctx context.Context, vectors map[string]*rawvec.Vector) error {
	g, ctx := errgroup.WithContext(ctx)

	for name, v := range vectors {
		name, v := name, v
		g.Go(func() error {
			return m.Save(ctx, name, v)
		})
	}

	return g.Wait()
}

// Load reads the snapshot with the given name. Options are passed to
// Read, so WithElementOps reattaches hooks to the loaded vector.
func (m *Manager) Load(ctx context.Context, name string, optFns ...Option) (*rawvec.Vector, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	f, err := os.Open(m.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrSnapshotNotFound, name)
		}
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	v, err := Read(f, optFns...)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %q: %w", name, err)
	}

	m.logger.InfoContext(ctx, "snapshot loaded",
		"name", name,
		"count", v.Count(),
		"object_size", v.ObjectSize(),
	)

	return v, nil
}

// List returns the names of all snapshots in the manager's directory, in
// directory order.
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("read snapshot dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), FileExtension) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), FileExtension))
	}

	return names, nil
}

// Remove deletes the snapshot with the given name, if it exists.
func (m *Manager) Remove(name string) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if err := os.Remove(m.path(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove snapshot: %w", err)
	}

	return nil
}
