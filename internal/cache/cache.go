package cache

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/santools/wwninfo/internal/utils"
)

const (
	// CacheDirName is the default folder name for the wwninfo cache.
	CacheDirName = ".wwninfo"

	// RegistryFilename is the cached copy of the IEEE OUI registry document.
	RegistryFilename = "oui.txt"
)

var (
	once sync.Once
	path string
)

// CacheDir returns the path to the cache directory.
//
// It initializes the path on the first call by determining the user's home
// directory, falling back to the temp location when that fails.
func CacheDir() string {
	once.Do(func() {
		home, err := os.UserHomeDir()
		if err != nil {
			home = os.TempDir()
		}
		path = filepath.Join(home, CacheDirName)
	})
	return path
}

// RegistryPath returns the full path of the cached registry document inside dir.
//
// If dir is empty, the default cache directory is used.
func RegistryPath(dir string) string {
	if dir == "" {
		dir = CacheDir()
	}
	return filepath.Join(dir, RegistryFilename)
}

// LoadRegistry reads the cached registry document from dir.
func LoadRegistry(dir string) ([]byte, error) {
	return utils.ReadFile(RegistryPath(dir))
}

// SaveRegistry persists the registry document to dir, creating the
// directory when needed.
func SaveRegistry(dir string, data []byte) error {
	if dir == "" {
		dir = CacheDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, RegistryFilename), data, 0o644)
}
