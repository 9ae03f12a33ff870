package uploader

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sirupsen/logrus"

	"essaydesk/internal/attachments"
	"essaydesk/internal/domain"
	"essaydesk/internal/ui/views"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

var iconGlyphs = map[attachments.IconKind]string{
	attachments.IconDocument: "▢",
	attachments.IconImage:    "▣",
	attachments.IconPDF:      "▤",
}

const (
	uploadGlyph = "⇪"
	removeGlyph = "✕"
)

// PickFinishedMsg carries a chooser outcome back to the uploader that asked
type PickFinishedMsg struct {
	id     int
	Result attachments.PickResult
	Err    error
}

// PickFailedMsg reports a chooser failure to the owner
type PickFailedMsg struct{ Err error }

// PickCancelledMsg reports that the user dismissed the chooser
type PickCancelledMsg struct{}

// CopiedMsg reports a locator copied to the clipboard
type CopiedMsg struct {
	Name string
	Err  error
}

// Model is the document uploader widget: a dropzone followed by the
// selected files. Cursor -1 is the dropzone.
type Model struct {
	id      int
	ctx     context.Context
	store   *attachments.Store
	gateway attachments.Gateway
	styles  *views.Styles
	keys    KeyMap

	cursor  int
	focused bool
	width   int

	onPick func(attachments.PickRequest)
}

// New creates an uploader. onChange receives every committed file list.
func New(ctx context.Context, opts attachments.Options, gw attachments.Gateway, styles *views.Styles, onChange attachments.Listener) *Model {
	store := attachments.NewStore(opts)
	store.OnChange(onChange)
	return &Model{
		id:      nextID(),
		ctx:     ctx,
		store:   store,
		gateway: gw,
		styles:  styles,
		keys:    DefaultKeyMap(),
		cursor:  -1,
		width:   40,
	}
}

// OnPick registers a hook called when a chooser is opened
func (m *Model) OnPick(fn func(attachments.PickRequest)) {
	m.onPick = fn
}

// Store exposes the selection store
func (m *Model) Store() *attachments.Store {
	return m.store
}

// Keys returns the key map for help rendering
func (m *Model) Keys() KeyMap {
	return m.keys
}

// Cursor returns the highlighted row, -1 for the dropzone
func (m *Model) Cursor() int {
	return m.cursor
}

func (m *Model) Focus() {
	m.focused = true
}

func (m *Model) Blur() {
	m.focused = false
}

func (m *Model) Focused() bool {
	return m.focused
}

// SetWidth sets the rendered width
func (m *Model) SetWidth(w int) {
	m.width = max(w, 12)
}

// Pick opens the chooser if the store allows it
func (m *Model) Pick() tea.Cmd {
	req, ok := m.store.BeginPick()
	if !ok {
		return nil
	}
	logrus.WithFields(logrus.Fields{
		"types":    req.TypeFilters,
		"multiple": req.Multiple,
	}).Debug("uploader: opening chooser")
	if m.onPick != nil {
		m.onPick(req)
	}
	return pickCmd(m.ctx, m.id, m.gateway, req)
}

// Update handles keys while focused and chooser results at any time
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PickFinishedMsg:
		if msg.id != m.id {
			return nil
		}
		return m.finish(msg)

	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > -1 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.store.Len()-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Pick):
			if m.cursor == -1 || msg.String() == "a" {
				return m.Pick()
			}
		case key.Matches(msg, m.keys.Remove):
			if m.cursor >= 0 {
				m.store.RequestRemove(m.cursor)
				m.clampCursor()
			}
		case key.Matches(msg, m.keys.Copy):
			return m.copyLocator()
		}
	}
	return nil
}

func (m *Model) finish(msg PickFinishedMsg) tea.Cmd {
	if err := m.store.FinishPick(msg.Result, msg.Err); err != nil {
		logrus.WithError(err).Warn("uploader: chooser failed")
		return func() tea.Msg { return PickFailedMsg{Err: err} }
	}
	m.clampCursor()
	if msg.Result.IsCancelled() {
		return func() tea.Msg { return PickCancelledMsg{} }
	}
	return nil
}

func (m *Model) copyLocator() tea.Cmd {
	if m.cursor < 0 || m.cursor >= m.store.Len() {
		return nil
	}
	fd := m.store.Files()[m.cursor]
	return func() tea.Msg {
		return CopiedMsg{Name: fd.Name, Err: clipboard.WriteAll(fd.URI)}
	}
}

func (m *Model) clampCursor() {
	if m.cursor >= m.store.Len() {
		m.cursor = m.store.Len() - 1
	}
}

// View renders the dropzone and the file rows
func (m *Model) View() string {
	parts := []string{m.dropzoneView()}
	for i, fd := range m.store.Files() {
		parts = append(parts, m.fileView(fd, m.focused && i == m.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// FocusLine returns the first line of the highlighted row within View
func (m *Model) FocusLine() int {
	line := lipgloss.Height(m.dropzoneView())
	if m.cursor < 0 {
		return 0
	}
	files := m.store.Files()
	for i := 0; i < m.cursor && i < len(files); i++ {
		line += lipgloss.Height(m.fileView(files[i], false))
	}
	return line
}

func (m *Model) dropzoneView() string {
	opts := m.store.Options()

	style := m.styles.Dropzone
	switch {
	case !m.store.CanAdd():
		style = m.styles.DropzoneDisabled
	case m.focused && m.cursor == -1:
		style = m.styles.DropzoneFocused
	}
	inner := max(m.width-style.GetHorizontalFrameSize(), 1)

	lines := []string{
		m.styles.UploadIcon.Render(uploadGlyph),
		m.styles.Placeholder.Render(ansi.Truncate(opts.Placeholder, inner, "…")),
	}
	if m.store.Picking() {
		lines = append(lines, m.styles.Hint.Render("Waiting for the chooser…"))
	} else if opts.AllowMultiple {
		lines = append(lines, m.styles.Hint.Render(attachments.FormatCount(m.store.Len(), opts.MaxCount)))
	}
	return style.Width(m.width - style.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

func (m *Model) fileView(fd domain.FileDescriptor, selected bool) string {
	style := m.styles.FileItem
	if selected {
		style = m.styles.FileItemFocused
	}
	inner := max(m.width-style.GetHorizontalFrameSize(), 6)

	icon := m.styles.FileIcon.Render(iconGlyphs[attachments.ClassifyIcon(fd.MimeType)])
	remove := m.styles.RemoveButton.Render(removeGlyph)
	nameWidth := max(inner-lipgloss.Width(icon)-lipgloss.Width(remove)-2, 1)
	name := m.styles.FileName.Render(ansi.Truncate(fd.Name, nameWidth, "…"))

	gap := max(inner-lipgloss.Width(icon)-1-lipgloss.Width(name)-lipgloss.Width(remove), 1)
	row := icon + " " + name + strings.Repeat(" ", gap) + remove

	if size := attachments.FormatSize(fd.Size); size != "" {
		row += "\n" + strings.Repeat(" ", lipgloss.Width(icon)+1) + m.styles.FileSize.Render(size)
	}
	return style.Width(m.width - style.GetHorizontalBorderSize()).Render(row)
}
