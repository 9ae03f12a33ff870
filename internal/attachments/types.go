package attachments

import (
	"github.com/samber/mo"

	"essaydesk/internal/domain"
)

const (
	// DefaultPlaceholder is shown on the dropzone when no prompt is configured
	DefaultPlaceholder = "Press enter to upload documents"
	// MimePDF is the default accepted type
	MimePDF = "application/pdf"
)

// Options configures an uploader at mount time
type Options struct {
	AllowMultiple bool
	AcceptedTypes []string
	MaxCount      int
	Placeholder   string
}

// DefaultOptions returns the single-PDF configuration
func DefaultOptions() Options {
	return Options{
		AllowMultiple: false,
		AcceptedTypes: []string{MimePDF},
		MaxCount:      1,
		Placeholder:   DefaultPlaceholder,
	}
}

// Normalize fills unset fields with defaults and clamps MaxCount to at least 1
func (o Options) Normalize() Options {
	if o.MaxCount < 1 {
		o.MaxCount = 1
	}
	if len(o.AcceptedTypes) == 0 {
		o.AcceptedTypes = []string{MimePDF}
	} else {
		o.AcceptedTypes = append([]string(nil), o.AcceptedTypes...)
	}
	if o.Placeholder == "" {
		o.Placeholder = DefaultPlaceholder
	}
	return o
}

// Capacity is 1 in single mode, MaxCount otherwise
func (o Options) Capacity() int {
	if !o.AllowMultiple {
		return 1
	}
	if o.MaxCount < 1 {
		return 1
	}
	return o.MaxCount
}

// PickRequest is sent to the gateway when the chooser opens
type PickRequest struct {
	TypeFilters  []string
	CacheLocally bool
	Multiple     bool
}

// RawItem is one entry of a gateway result, before policy is applied
type RawItem struct {
	Locator     string
	DisplayName string
	MimeType    mo.Option[string]
	ByteSize    mo.Option[int64]
}

// PickResult is the outcome of one gateway invocation
type PickResult struct {
	cancelled bool
	items     []RawItem
}

// Cancelled is the result of a dismissed chooser
func Cancelled() PickResult {
	return PickResult{cancelled: true}
}

// Picked wraps the selected items; an empty list counts as a cancellation
func Picked(items ...RawItem) PickResult {
	if len(items) == 0 {
		return Cancelled()
	}
	return PickResult{items: append([]RawItem(nil), items...)}
}

// IsCancelled reports whether the user dismissed the chooser
func (r PickResult) IsCancelled() bool {
	return r.cancelled || len(r.items) == 0
}

// Items returns a copy of the picked entries
func (r PickResult) Items() []RawItem {
	return append([]RawItem(nil), r.items...)
}

// Describe converts a raw item into a descriptor; ok is false when the item has no locator
func Describe(item RawItem) (domain.FileDescriptor, bool) {
	if item.Locator == "" {
		return domain.FileDescriptor{}, false
	}
	fd := domain.FileDescriptor{
		URI:      item.Locator,
		Name:     item.DisplayName,
		MimeType: item.MimeType,
		Size:     item.ByteSize,
	}
	if size, ok := item.ByteSize.Get(); ok && size < 0 {
		fd.Size = mo.None[int64]()
	}
	return fd, true
}
