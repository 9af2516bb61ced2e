package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const configDirName = "snake"

// FileKV stores each key in its own file under Dir.
type FileKV struct {
	Dir string
}

// ConfigDir returns the default directory for persisted data,
// UserConfigDir()/snake.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(base, configDirName), nil
}

// NewFileKV creates dir if needed.
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	return &FileKV{Dir: dir}, nil
}

func (f *FileKV) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(f.Dir, key), nil
}

func (f *FileKV) Get(key string) (string, bool, error) {
	p, err := f.path(key)
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set replaces the value atomically through a temp file and rename.
func (f *FileKV) Set(key, value string) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp, p); err != nil {
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}
