package picker

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/samber/mo"
	"github.com/sirupsen/logrus"

	"essaydesk/internal/attachments"
)

// ErrNotRegularFile is returned for directories and devices
var ErrNotRegularFile = errors.New("not a regular file")

// Describer turns chosen paths into raw gateway items
type Describer struct {
	cache *Cache
}

// NewDescriber creates a describer; a nil cache disables local copies
func NewDescriber(cache *Cache) Describer {
	return Describer{cache: cache}
}

// Describe stats and sniffs path. With cacheLocally set the locator points at
// a private copy of the file.
func (d Describer) Describe(path string, cacheLocally bool) (attachments.RawItem, error) {
	item, _, err := d.describe(path, cacheLocally)
	return item, err
}

// DescribeAll describes paths in order. If one fails, the cache copies made
// for the earlier ones are removed before the error is returned.
func (d Describer) DescribeAll(paths []string, cacheLocally bool) ([]attachments.RawItem, error) {
	items := make([]attachments.RawItem, 0, len(paths))
	var copies []string
	for _, p := range paths {
		item, copied, err := d.describe(p, cacheLocally)
		if err != nil {
			for _, c := range copies {
				if rmErr := os.Remove(c); rmErr != nil {
					logrus.WithError(rmErr).WithField("path", c).Warn("picker: could not remove cache copy")
				}
			}
			return nil, err
		}
		if copied != "" {
			copies = append(copies, copied)
		}
		items = append(items, item)
	}
	return items, nil
}

// describe also returns the path of the cache copy, if one was made
func (d Describer) describe(path string, cacheLocally bool) (attachments.RawItem, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return attachments.RawItem{}, "", fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return attachments.RawItem{}, "", fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return attachments.RawItem{}, "", fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}

	item := attachments.RawItem{
		DisplayName: filepath.Base(abs),
		ByteSize:    mo.Some(info.Size()),
	}

	if mt, err := Detect(abs); err != nil {
		logrus.WithError(err).WithField("path", abs).Warn("picker: could not detect type")
	} else if mt != "" {
		item.MimeType = mo.Some(mt)
	}

	if !cacheLocally || d.cache == nil {
		item.Locator = FileURI(abs)
		return item, "", nil
	}
	copied, err := d.cache.Store(abs)
	if err != nil {
		return attachments.RawItem{}, "", err
	}
	item.Locator = FileURI(copied)
	return item, copied, nil
}

// FileURI renders an absolute path as a file:// locator
func FileURI(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}
