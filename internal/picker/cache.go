package picker

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Cache holds local copies of picked files
type Cache struct {
	dir string
}

// DefaultCacheDir returns <user cache dir>/essaydesk/DocumentPicker
func DefaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(base, "essaydesk", "DocumentPicker"), nil
}

// NewCache creates a cache rooted at dir; the directory is created lazily
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

// Dir returns the cache directory
func (c *Cache) Dir() string {
	return c.dir
}

// Store copies src into the cache under a fresh name that keeps the extension
func (c *Cache) Store(src string) (string, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	dst := filepath.Join(c.dir, uuid.NewString()+strings.ToLower(filepath.Ext(src)))
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("create cache copy: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return "", fmt.Errorf("copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("close cache copy: %w", err)
	}
	return dst, nil
}

// Purge removes every cached copy
func (c *Cache) Purge() error {
	if err := os.RemoveAll(c.dir); err != nil {
		return fmt.Errorf("purge cache: %w", err)
	}
	return nil
}
