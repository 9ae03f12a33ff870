package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"essaydesk/internal/ui/uploader"
	"essaydesk/internal/ui/views"
)

type helpSection struct {
	title string
	keys  []key.Binding
}

// HelpRenderer renders the full key reference shown in the pager
type HelpRenderer struct {
	palette views.Palette
	screen  KeyMap
	upload  uploader.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(palette views.Palette, screen KeyMap, upload uploader.KeyMap) *HelpRenderer {
	return &HelpRenderer{palette: palette, screen: screen, upload: upload}
}

// Render returns the help text with colours for the pager
func (r *HelpRenderer) Render() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(r.palette.Tint).
		MarginBottom(1)
	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(r.palette.Link).
		MarginTop(1)
	keyStyle := lipgloss.NewStyle().Foreground(r.palette.Warning)
	descStyle := lipgloss.NewStyle().Foreground(r.palette.Text)

	sections := []helpSection{
		{"Screens", []key.Binding{r.screen.Home, r.screen.Explore, r.screen.PageUp, r.screen.PageDown}},
		{"Form", []key.Binding{r.screen.NextFocus, r.screen.PrevFocus}},
		{"Documents", []key.Binding{r.upload.Pick, r.upload.Remove, r.upload.Copy, r.upload.Up, r.upload.Down}},
		{"Other", []key.Binding{r.screen.Help, r.screen.QuitKey, r.screen.Quit}},
	}

	width := 0
	for _, s := range sections {
		for _, k := range s.keys {
			width = max(width, lipgloss.Width(k.Help().Key))
		}
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("essaydesk help"))
	help.WriteString("\n")
	for _, s := range sections {
		help.WriteString(sectionStyle.Render(s.title))
		help.WriteString("\n")
		for _, k := range s.keys {
			h := k.Help()
			pad := strings.Repeat(" ", width-lipgloss.Width(h.Key)+2)
			help.WriteString(fmt.Sprintf("  %s%s%s\n", keyStyle.Render(h.Key), pad, descStyle.Render(h.Desc)))
		}
	}
	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Faint(true).Render("  ? and q work while no text field has focus"))
	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{program: program}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// let ov finish with the terminal before we take it back
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
