package picker

import (
	"mime"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Filter matches MIME types against the chooser's type filters.
// Supported forms are exact ("application/pdf"), family ("image/*") and any ("*/*").
type Filter struct {
	patterns []string
}

// NewFilter normalizes the given type filters
func NewFilter(types []string) Filter {
	f := Filter{}
	for _, t := range types {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if t == "*" {
			t = "*/*"
		}
		f.patterns = append(f.patterns, t)
	}
	return f
}

// AcceptsAny reports whether every type passes
func (f Filter) AcceptsAny() bool {
	return len(f.patterns) == 0 || slices.Contains(f.patterns, "*/*")
}

// Accepts reports whether mimeType passes one of the filters. Parameters
// such as "; charset=utf-8" are ignored.
func (f Filter) Accepts(mimeType string) bool {
	if f.AcceptsAny() {
		return true
	}
	mt := baseType(mimeType)
	if mt == "" {
		return false
	}
	for _, p := range f.patterns {
		if family, ok := strings.CutSuffix(p, "/*"); ok {
			if strings.HasPrefix(mt, family+"/") {
				return true
			}
			continue
		}
		if p == mt {
			return true
		}
		if m := mimetype.Lookup(mt); m != nil && m.Is(p) {
			return true
		}
	}
	return false
}

// Extensions lists file extensions for the exact filters, in lower and
// upper case since the file picker matches suffixes as written. It returns
// nil when a wildcard is present, since a family cannot be enumerated.
func (f Filter) Extensions() []string {
	if f.AcceptsAny() {
		return nil
	}
	var exts []string
	for _, p := range f.patterns {
		if strings.HasSuffix(p, "/*") {
			return nil
		}
		if m := mimetype.Lookup(p); m != nil && m.Extension() != "" {
			exts = append(exts, m.Extension())
		}
		if more, err := mime.ExtensionsByType(p); err == nil {
			exts = append(exts, more...)
		}
	}
	for _, e := range exts {
		exts = append(exts, strings.ToUpper(e))
	}
	slices.Sort(exts)
	return slices.Compact(exts)
}

// Detect sniffs the MIME type of a file, without parameters
func Detect(path string) (string, error) {
	m, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	return baseType(m.String()), nil
}

func baseType(mimeType string) string {
	mt, _, _ := strings.Cut(mimeType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}
