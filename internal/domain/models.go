package domain

import "github.com/samber/mo"

// FileDescriptor represents one user-selected file
type FileDescriptor struct {
	URI      string            // opaque locator, never empty
	Name     string            // display name
	MimeType mo.Option[string] // absent when the picker could not classify the file
	Size     mo.Option[int64]  // absent means unknown, not zero bytes
}

// Equal reports whether two descriptors carry the same values
func (f FileDescriptor) Equal(other FileDescriptor) bool {
	if f.URI != other.URI || f.Name != other.Name {
		return false
	}
	mime, hasMime := f.MimeType.Get()
	otherMime, otherHasMime := other.MimeType.Get()
	if hasMime != otherHasMime || mime != otherMime {
		return false
	}
	size, hasSize := f.Size.Get()
	otherSize, otherHasSize := other.Size.Get()
	return hasSize == otherHasSize && size == otherSize
}

// Tab identifies a top-level screen
type Tab int

const (
	TabHome Tab = iota
	TabExplore
)

// Title returns the label shown on the tab bar
func (t Tab) Title() string {
	switch t {
	case TabHome:
		return "Home"
	case TabExplore:
		return "Explore"
	default:
		return ""
	}
}

// Assignment is the form state owned by the assignment screen
type Assignment struct {
	Essay string
	Files []FileDescriptor
}
