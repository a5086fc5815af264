package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// RotatorConfig sizes the rotating log file.
type RotatorConfig struct {
	Dir        string
	Name       string // defaults to spacesync.log
	MaxSizeMB  int
	MaxBackups int // 0 keeps every backup
	MaxAgeDays int // 0 disables age pruning
	Compress   bool
}

// LogRotator is an io.Writer that rolls the file over once it reaches
// MaxSizeMB. Rolled files are named <name>.<timestamp>[.gz].
type LogRotator struct {
	mu          sync.Mutex
	cfg         RotatorConfig
	maxSize     int64
	now         func() time.Time
	currentFile *os.File
	currentSize int64
}

// NewLogRotator opens (or creates) the active log file.
func NewLogRotator(cfg RotatorConfig) (*LogRotator, error) {
	if cfg.Name == "" {
		cfg.Name = "spacesync.log"
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	r := &LogRotator{
		cfg:     cfg,
		maxSize: int64(cfg.MaxSizeMB) * 1024 * 1024,
		now:     time.Now,
	}
	if err := r.openCurrentFile(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LogRotator) currentPath() string {
	return filepath.Join(r.cfg.Dir, r.cfg.Name)
}

func (r *LogRotator) openCurrentFile() error {
	path := r.currentPath()
	if info, err := os.Stat(path); err == nil {
		r.currentSize = info.Size()
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.currentFile = file
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.openCurrentFile(); err != nil {
			return 0, err
		}
	}
	if r.currentSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.currentFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
	}
	r.currentFile = nil

	backupPath := fmt.Sprintf("%s.%s", r.currentPath(), r.now().Format("2006-01-02-15-04-05.000"))
	if err := os.Rename(r.currentPath(), backupPath); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.cfg.Compress {
		if err := compressFile(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to compress log file %s: %v\n", backupPath, err)
		} else if err := os.Remove(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove uncompressed log file %s: %v\n", backupPath, err)
		}
	}

	r.prune()
	r.currentSize = 0
	return r.openCurrentFile()
}

func compressFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		_ = gz.Close()
		_ = out.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// prune drops backups older than MaxAgeDays, then the oldest beyond MaxBackups.
func (r *LogRotator) prune() {
	entries, err := os.ReadDir(r.cfg.Dir)
	if err != nil {
		return
	}

	type backup struct {
		name string
		mod  time.Time
	}
	var backups []backup
	maxAge := time.Duration(r.cfg.MaxAgeDays) * 24 * time.Hour
	now := r.now()

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), r.cfg.Name+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if maxAge > 0 && now.Sub(info.ModTime()) > maxAge {
			_ = os.Remove(filepath.Join(r.cfg.Dir, entry.Name()))
			continue
		}
		backups = append(backups, backup{name: entry.Name(), mod: info.ModTime()})
	}

	if r.cfg.MaxBackups <= 0 || len(backups) <= r.cfg.MaxBackups {
		return
	}
	slices.SortFunc(backups, func(a, b backup) int {
		if c := a.mod.Compare(b.mod); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
	for _, b := range backups[:len(backups)-r.cfg.MaxBackups] {
		_ = os.Remove(filepath.Join(r.cfg.Dir, b.name))
	}
}

// Close closes the active file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}
