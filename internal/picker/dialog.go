package picker

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"essaydesk/internal/attachments"
)

// DialogGateway is the interactive document chooser. Each Pick runs a
// short-lived Bubble Tea program around the bubbles file picker.
type DialogGateway struct {
	dir        string
	showHidden bool
	describer  Describer
	stdin      io.Reader
	stdout     io.Writer
}

// NewDialogGateway creates a chooser that starts browsing in dir
func NewDialogGateway(dir string, showHidden bool, d Describer) *DialogGateway {
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		} else {
			dir = "."
		}
	}
	return &DialogGateway{dir: dir, showHidden: showHidden, describer: d}
}

// SetStdin sets the terminal input used by the chooser
func (g *DialogGateway) SetStdin(r io.Reader) { g.stdin = r }

// SetStdout sets the terminal output used by the chooser
func (g *DialogGateway) SetStdout(w io.Writer) { g.stdout = w }

// Dir returns the directory the next pick starts in
func (g *DialogGateway) Dir() string { return g.dir }

// Pick implements attachments.Gateway
func (g *DialogGateway) Pick(ctx context.Context, req attachments.PickRequest) (attachments.PickResult, error) {
	m := newDialogModel(req, g.dir, g.showHidden)

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if g.stdin != nil {
		opts = append(opts, tea.WithInput(g.stdin))
	}
	if g.stdout != nil {
		opts = append(opts, tea.WithOutput(g.stdout))
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return attachments.PickResult{}, fmt.Errorf("run document chooser: %w", err)
	}
	dm, ok := final.(*dialogModel)
	if !ok {
		return attachments.PickResult{}, fmt.Errorf("unexpected chooser model %T", final)
	}
	g.dir = dm.fp.CurrentDirectory

	paths := dm.Chosen()
	if len(paths) == 0 {
		return attachments.Cancelled(), nil
	}

	items, err := g.describer.DescribeAll(paths, req.CacheLocally)
	if err != nil {
		return attachments.PickResult{}, err
	}
	logrus.WithField("files", len(items)).Info("picker: documents chosen")
	return attachments.Picked(items...), nil
}

type dialogKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

func (k dialogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

func (k dialogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type dialogModel struct {
	fp        filepicker.Model
	filter    Filter
	multiple  bool
	chosen    []string
	cancelled bool
	notice    string
	keys      dialogKeyMap
	help      help.Model
}

func newDialogModel(req attachments.PickRequest, dir string, showHidden bool) *dialogModel {
	filter := NewFilter(req.TypeFilters)

	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.ShowHidden = showHidden
	fp.AllowedTypes = filter.Extensions()

	confirmHelp := "select"
	if req.Multiple {
		confirmHelp = "done"
	}

	return &dialogModel{
		fp:       fp,
		filter:   filter,
		multiple: req.Multiple,
		keys: dialogKeyMap{
			Confirm: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", confirmHelp)),
			Cancel:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "cancel")),
		},
		help: help.New(),
	}
}

// Chosen returns the selected paths, or nil when the dialog was cancelled
func (m *dialogModel) Chosen() []string {
	if m.cancelled {
		return nil
	}
	return slices.Clone(m.chosen)
}

func (m *dialogModel) Init() tea.Cmd {
	return m.fp.Init()
}

func (m *dialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			if m.multiple && len(m.chosen) > 0 {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.fp, cmd = m.fp.Update(msg)

	if ok, path := m.fp.DidSelectFile(msg); ok {
		return m, tea.Batch(cmd, m.choose(path))
	}
	if ok, path := m.fp.DidSelectDisabledFile(msg); ok {
		m.notice = filepath.Base(path) + " is not an accepted type"
	}
	return m, cmd
}

func (m *dialogModel) choose(path string) tea.Cmd {
	mt, err := Detect(path)
	if err != nil || !m.filter.Accepts(mt) {
		m.notice = filepath.Base(path) + " is not an accepted type"
		return nil
	}

	if !m.multiple {
		m.chosen = []string{path}
		return tea.Quit
	}

	if i := slices.Index(m.chosen, path); i >= 0 {
		m.chosen = slices.Delete(m.chosen, i, i+1)
	} else {
		m.chosen = append(m.chosen, path)
	}
	m.notice = fmt.Sprintf("%d selected", len(m.chosen))
	return nil
}

var (
	dialogTitleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	dialogNoticeStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	dialogChosenStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#A5B4FC"})
)

func (m *dialogModel) View() string {
	var b strings.Builder

	title := "Select a document"
	if m.multiple {
		title = "Select documents"
	}
	b.WriteString(dialogTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.fp.CurrentDirectory)
	b.WriteString("\n\n")
	b.WriteString(m.fp.View())
	b.WriteString("\n")

	for _, p := range m.chosen {
		b.WriteString(dialogChosenStyle.Render("+ " + filepath.Base(p)))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(dialogNoticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
