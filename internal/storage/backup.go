package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

const backupTimeLayout = "20060102_150405"

// BackupManager keeps timestamped copies of a document file before it is
// overwritten
type BackupManager struct {
	backupDir string
	keep      int
}

// NewBackupManager creates a backup manager writing into dir, keeping at
// most keep backups per file. An empty dir means the default location.
func NewBackupManager(dir string, keep int) (*BackupManager, error) {
	if dir == "" {
		dir = GetBackupDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}
	return &BackupManager{backupDir: dir, keep: keep}, nil
}

// GetBackupDir returns the default backup directory
func GetBackupDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".tui-sidebar", "backups")
	}
	return filepath.Join(homeDir, ".local", "share", "tui-sidebar", "backups")
}

// BackupMetadata holds parsed information about a backup file
type BackupMetadata struct {
	FilePath  string
	Timestamp time.Time
}

// CreateBackup copies the current content of path into the backup directory.
// Nothing is written when path does not exist yet.
func (bm *BackupManager) CreateBackup(path string, now time.Time) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read file for backup: %w", err)
	}

	name := fmt.Sprintf("%s_%s", now.Format(backupTimeLayout), filepath.Base(path))
	if err := os.WriteFile(filepath.Join(bm.backupDir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}

	return bm.prune(path)
}

// FindBackupsForFile returns the backups of the file at path, oldest first
func (bm *BackupManager) FindBackupsForFile(path string) ([]BackupMetadata, error) {
	entries, err := os.ReadDir(bm.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	base := filepath.Base(path)
	n := len(backupTimeLayout)
	var backups []BackupMetadata
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || len(name) <= n+1 || name[n] != '_' || name[n+1:] != base {
			continue
		}
		ts, err := time.ParseInLocation(backupTimeLayout, name[:n], time.Local)
		if err != nil {
			continue
		}
		backups = append(backups, BackupMetadata{
			FilePath:  filepath.Join(bm.backupDir, name),
			Timestamp: ts,
		})
	}

	slices.SortFunc(backups, func(a, b BackupMetadata) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return strings.Compare(a.FilePath, b.FilePath)
	})
	return backups, nil
}

func (bm *BackupManager) prune(path string) error {
	if bm.keep <= 0 {
		return nil
	}
	backups, err := bm.FindBackupsForFile(path)
	if err != nil {
		return err
	}
	for len(backups) > bm.keep {
		if err := os.Remove(backups[0].FilePath); err != nil {
			return fmt.Errorf("failed to remove old backup: %w", err)
		}
		backups = backups[1:]
	}
	return nil
}
