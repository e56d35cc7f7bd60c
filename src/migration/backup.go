package migration

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ChemCoat/ChemCoat-Backend/src/logger"
)

// BackupHandle identifies one snapshot of the store file. The orchestrator
// holds the most recent handle for the duration of a critical step and uses
// it for rollback.
type BackupHandle struct {
	Label     string    `json:"label"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
	SizeBytes int64     `json:"sizeBytes"`
}

// BackupManager snapshots and restores the embedded sqlite store file. The
// copy is best-effort consistent: the store is file-based and single-writer
// in this design, and no other process touches it during a migration run.
type BackupManager struct {
	storePath string
	backupDir string
	log       *logger.Logger
}

func NewBackupManager(storePath, backupDir string, log *logger.Logger) *BackupManager {
	return &BackupManager{
		storePath: storePath,
		backupDir: backupDir,
		log:       log.With("component", "backup"),
	}
}

// CreateBackup copies the store file to <backupDir>/<label>-backup-<ISO8601>.db.
// A missing store file is not an error: it returns a nil handle and logs a
// warning, since a fresh environment has nothing to back up yet.
func (m *BackupManager) CreateBackup(label string) (*BackupHandle, error) {
	info, err := os.Stat(m.storePath)
	if os.IsNotExist(err) {
		m.log.Warn("store file does not exist, skipping backup", "path", m.storePath)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat store file: %w", err)
	}

	if err := os.MkdirAll(m.backupDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating backup directory: %w", err)
	}

	now := time.Now().UTC()
	// Colons are not filesystem-safe everywhere, so the ISO timestamp in the
	// filename uses dashes.
	stamp := now.Format("2006-01-02T15-04-05Z")
	dest := filepath.Join(m.backupDir, fmt.Sprintf("%s-backup-%s.db", label, stamp))

	if err := copyFile(m.storePath, dest); err != nil {
		return nil, fmt.Errorf("copying store file to %s: %w", dest, err)
	}

	handle := &BackupHandle{
		Label:     label,
		Path:      dest,
		Timestamp: now,
		SizeBytes: info.Size(),
	}
	m.log.Info("backup created", "label", label, "path", dest, "sizeBytes", info.Size())
	return handle, nil
}

// RestoreFromBackup overwrites the store file with the snapshot the handle
// points at. Unlike CreateBackup, a missing backup file is a hard error.
func (m *BackupManager) RestoreFromBackup(handle *BackupHandle) error {
	if handle == nil {
		return fmt.Errorf("restore requested with nil backup handle")
	}
	if _, err := os.Stat(handle.Path); err != nil {
		return fmt.Errorf("backup file %s is not readable: %w", handle.Path, err)
	}
	if err := os.MkdirAll(filepath.Dir(m.storePath), 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}
	if err := copyFile(handle.Path, m.storePath); err != nil {
		return fmt.Errorf("restoring store from %s: %w", handle.Path, err)
	}
	m.log.Info("store restored from backup", "label", handle.Label, "path", handle.Path)
	return nil
}

// FindEarliestBackup returns a handle for the oldest backup carrying the
// given label, or nil if none exists. The --rollback CLI path uses this to
// locate the "initial" snapshot taken before the first migration ever ran.
func (m *BackupManager) FindEarliestBackup(label string) (*BackupHandle, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading backup directory: %w", err)
	}

	prefix := label + "-backup-"
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), prefix) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, nil
	}
	// Timestamps in the filenames sort lexicographically.
	sort.Strings(names)

	path := filepath.Join(m.backupDir, names[0])
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat backup %s: %w", path, err)
	}
	return &BackupHandle{
		Label:     label,
		Path:      path,
		Timestamp: info.ModTime().UTC(),
		SizeBytes: info.Size(),
	}, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
