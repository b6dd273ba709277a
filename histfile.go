package lineedit

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// HistoryBackend persists submitted lines across sessions. The editor core
// never touches files itself; a backend is wired in by the host (the
// bundled Prompt does this through its history options).
type HistoryBackend interface {
	// Load returns the persisted lines, oldest first.
	Load() ([]string, error)
	// Append persists one submitted line.
	Append(line string) error
	// Close releases any resources held by the backend.
	Close() error
}

// FileBackend stores history as one line per entry in a plain text file,
// rotating the file with numbered backups once it grows past MaxFileSize.
type FileBackend struct {
	MaxFileSize int64 // rotation threshold in bytes (default 1MB)
	MaxBackups  int   // numbered backup files to keep (default 3)

	path string
}

// NewFileBackend creates a file backend for the given path. The path may
// be absolute, relative (converted to absolute), or start with "~/" for
// the home directory.
func NewFileBackend(path string) (*FileBackend, error) {
	abs, err := expandHistoryPath(path)
	if err != nil {
		return nil, err
	}
	return &FileBackend{
		MaxFileSize: 1024 * 1024,
		MaxBackups:  3,
		path:        abs,
	}, nil
}

// Load reads all persisted lines. A missing file is not an error; it just
// means no history yet.
func (f *FileBackend) Load() ([]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}
	return lines, nil
}

// Append writes one line to the end of the history file, rotating first if
// the file has grown past MaxFileSize.
func (f *FileBackend) Append(line string) error {
	if line == "" {
		return nil
	}
	if err := f.rotateIfNeeded(); err != nil {
		return fmt.Errorf("failed to rotate history file: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	if _, err := fmt.Fprintln(file, line); err != nil {
		return fmt.Errorf("failed to write history entry: %w", err)
	}
	return nil
}

// Close implements HistoryBackend. The file is opened per Append, so there
// is nothing to release.
func (f *FileBackend) Close() error {
	return nil
}

func (f *FileBackend) rotateIfNeeded() error {
	info, err := os.Stat(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.Size() < f.MaxFileSize {
		return nil
	}
	return f.rotate()
}

// rotate shifts the numbered backups up by one and moves the current file
// to the .1 slot. With no backups allowed the file is simply truncated.
func (f *FileBackend) rotate() error {
	if f.MaxBackups <= 0 {
		return os.Truncate(f.path, 0)
	}

	oldest := f.path + "." + strconv.Itoa(f.MaxBackups)
	if _, err := os.Stat(oldest); err == nil {
		if err := os.Remove(oldest); err != nil {
			return fmt.Errorf("failed to remove oldest backup: %w", err)
		}
	}

	for i := f.MaxBackups - 1; i >= 1; i-- {
		oldFile := f.path + "." + strconv.Itoa(i)
		newFile := f.path + "." + strconv.Itoa(i+1)
		if _, err := os.Stat(oldFile); err == nil {
			if err := os.Rename(oldFile, newFile); err != nil {
				return fmt.Errorf("failed to rotate backup %d: %w", i, err)
			}
		}
	}

	if err := os.Rename(f.path, f.path+".1"); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}
	return nil
}

// DefaultHistoryFile returns the default history file path following the
// XDG Base Directory Specification: $XDG_CONFIG_HOME/lineedit/history, or
// ~/.config/lineedit/history when XDG_CONFIG_HOME is unset.
func DefaultHistoryFile() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "lineedit", "history")
}

// expandHistoryPath expands "~" and converts the path to absolute.
func expandHistoryPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("history file path is empty")
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		if path == "~" {
			path = home
		} else {
			path = filepath.Join(home, path[2:])
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to convert to absolute path: %w", err)
	}
	return absPath, nil
}
