package attachments

import (
	"fmt"
	"strings"

	"github.com/samber/mo"
)

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatSize renders a byte count with one decimal, e.g. "1.5 KB".
// An absent size renders as the empty string.
func FormatSize(bytes mo.Option[int64]) string {
	n, ok := bytes.Get()
	if !ok {
		return ""
	}
	size := float64(n)
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", size, sizeUnits[unit])
}

// IconKind is the icon category of a file
type IconKind int

const (
	IconDocument IconKind = iota
	IconImage
	IconPDF
)

func (k IconKind) String() string {
	switch k {
	case IconImage:
		return "image"
	case IconPDF:
		return "pdf-document"
	default:
		return "generic-document"
	}
}

// ClassifyIcon picks the icon for a MIME type; the first matching rule wins
func ClassifyIcon(mimeType mo.Option[string]) IconKind {
	mt, ok := mimeType.Get()
	if !ok {
		return IconDocument
	}
	if strings.HasPrefix(mt, "image/") {
		return IconImage
	}
	if mt == MimePDF {
		return IconPDF
	}
	return IconDocument
}

// FormatCount renders the multi-select hint
func FormatCount(n, max int) string {
	return fmt.Sprintf("%d / %d files", n, max)
}
