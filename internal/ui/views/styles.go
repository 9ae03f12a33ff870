package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Palette Palette

	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Body          lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Help          lipgloss.Style

	Dropzone         lipgloss.Style
	DropzoneFocused  lipgloss.Style
	DropzoneDisabled lipgloss.Style
	Placeholder      lipgloss.Style
	Hint             lipgloss.Style
	UploadIcon       lipgloss.Style

	FileItem        lipgloss.Style
	FileItemFocused lipgloss.Style
	FileIcon        lipgloss.Style
	FileName        lipgloss.Style
	FileSize        lipgloss.Style
	RemoveButton    lipgloss.Style

	TabBar         lipgloss.Style
	TabActive      lipgloss.Style
	TabInactive    lipgloss.Style
	TabPressed     lipgloss.Style
	ScreenPadding  lipgloss.Style
	SectionSpacing int
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	p := DefaultPalette()
	fileItem := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	dropzone := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2).
		Align(lipgloss.Center)

	return &Styles{
		Palette: p,

		Title:         lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		Subtitle:      lipgloss.NewStyle().Bold(true).Foreground(p.Icon),
		Body:          lipgloss.NewStyle().Foreground(p.Text),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(p.Icon),
		StatusError:   lipgloss.NewStyle().Foreground(p.Error),
		StatusSuccess: lipgloss.NewStyle().Foreground(p.Success),
		Help:          lipgloss.NewStyle().Faint(true),

		Dropzone:         dropzone,
		DropzoneFocused:  dropzone.BorderForeground(p.Tint),
		DropzoneDisabled: dropzone.BorderForeground(p.Border).Faint(true),
		Placeholder:      lipgloss.NewStyle().Foreground(p.Text),
		Hint:             lipgloss.NewStyle().Foreground(p.Icon).Faint(true),
		UploadIcon:       lipgloss.NewStyle().Foreground(p.Tint).Bold(true),

		FileItem:        fileItem,
		FileItemFocused: fileItem.BorderForeground(p.Tint),
		FileIcon:        lipgloss.NewStyle().Foreground(p.Icon),
		FileName:        lipgloss.NewStyle().Foreground(p.Text),
		FileSize:        lipgloss.NewStyle().Foreground(p.Icon).Faint(true),
		RemoveButton:    lipgloss.NewStyle().Foreground(p.Error),

		TabBar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(p.Border),
		TabActive:      lipgloss.NewStyle().Foreground(p.TabIconSelected).Bold(true).Padding(0, 2),
		TabInactive:    lipgloss.NewStyle().Foreground(p.TabIconDefault).Padding(0, 2),
		TabPressed:     lipgloss.NewStyle().Foreground(p.TabIconSelected).Bold(true).Underline(true).Padding(0, 2),
		ScreenPadding:  lipgloss.NewStyle().Padding(1, 4),
		SectionSpacing: 1,
	}
}
