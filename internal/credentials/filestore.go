package credentials

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/neko3da4/CHRFORGE/internal/bus"
)

type credentialFile struct {
	Token        string `toml:"token"`
	RefreshToken string `toml:"refresh_token"`
}

// FileStore is a Store persisted as a TOML file. The file is written with
// owner-only permissions.
type FileStore struct {
	*Store
	path string
}

// NewFileStore wraps a fresh store bound to path. Call Load to pick up
// previously saved tokens.
func NewFileStore(path string, b *bus.Bus, refresh RefreshFunc) *FileStore {
	return &FileStore{Store: NewStore(b, refresh), path: path}
}

// Path returns the backing file location.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the token pair from disk. A missing file leaves the store
// empty and is not an error.
func (f *FileStore) Load() error {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("credentials: read %s: %w", f.path, err)
	}
	var rec credentialFile
	if err := toml.Unmarshal(raw, &rec); err != nil {
		return fmt.Errorf("credentials: parse %s: %w", f.path, err)
	}
	f.SetRefreshToken(rec.RefreshToken)
	f.SetToken(rec.Token)
	return nil
}

// Save writes the current token pair to disk, creating parent directories
// as needed.
func (f *FileStore) Save() error {
	rec := credentialFile{
		Token:        f.Token(),
		RefreshToken: f.RefreshToken(),
	}
	raw, err := toml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("credentials: encode %s: %w", f.path, err)
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("credentials: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return fmt.Errorf("credentials: write %s: %w", f.path, err)
	}
	return nil
}
