package ui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"essaydesk/internal/attachments"
	"essaydesk/internal/config"
	"essaydesk/internal/domain"
	"essaydesk/internal/eventbus"
	"essaydesk/internal/ui/uploader"
	"essaydesk/internal/ui/views"
)

const (
	// essay field height is 120px in the form layout, 20px per text row
	essayRows        = 120 / 20
	essayPlaceholder = "Write your essay here..."
	tabPressDuration = 150 * time.Millisecond
	statusDuration   = 3 * time.Second
)

type focusArea int

const (
	focusEssay focusArea = iota
	focusUploader
	focusCount
)

// Model is the root program model: an assignment form on the Home tab
// and an Explore screen.
type Model struct {
	ctx    context.Context
	bus    eventbus.EventBus
	config *config.Config

	width  int
	height int
	help   help.Model
	keys   KeyMap

	styles   *views.Styles
	renderer *views.Renderer
	tabs     *views.TabBar
	scroll   *views.ThemedScroll
	essay    *views.ThemedInput
	uploader *uploader.Model
	focus    focusArea

	assignment domain.Assignment
	words      int

	statusMessage string
	statusIsError bool
	statusSeq     int

	inPagerMode bool
	e2e         bool

	// Program reference for terminal management
	program *tea.Program
	helpOps *HelpOps
}

// NewModel creates a new UI model. gw opens the document chooser.
func NewModel(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, gw attachments.Gateway) *Model {
	styles := views.NewStyles()
	m := &Model{
		ctx:      ctx,
		bus:      bus,
		config:   cfg,
		help:     help.New(),
		keys:     DefaultKeyMap(),
		styles:   styles,
		renderer: views.NewRenderer(styles),
		tabs:     views.NewTabBar(styles, domain.TabHome, domain.TabExplore),
		scroll:   views.NewThemedScroll(styles),
		essay:    views.NewThemedInput(essayPlaceholder, essayRows, styles.Palette),
		e2e:      os.Getenv("ESSAYDESK_E2E_TEST") == "1",
	}
	m.uploader = uploader.New(ctx, cfg.Uploader.Options(), gw, styles, m.onFilesChanged)
	m.uploader.OnPick(m.onPick)
	m.essay.Focus()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Assignment returns the form values
func (m *Model) Assignment() domain.Assignment {
	a := m.assignment
	a.Essay = m.essay.Value()
	a.Files = append([]domain.FileDescriptor(nil), m.assignment.Files...)
	return a
}

func (m *Model) onFilesChanged(files []domain.FileDescriptor) {
	m.assignment.Files = files
	logrus.WithField("files", len(files)).Info("assignment: documents changed")
	m.publish(eventbus.FilesChangedEvent{Files: files})
}

func (m *Model) onPick(req attachments.PickRequest) {
	m.publish(eventbus.PickRequestedEvent{TypeFilters: req.TypeFilters, Multiple: req.Multiple})
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.essay.Focus()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scroll.SetSize(msg.Width, msg.Height-m.renderer.ChromeHeight())
		m.essay.SetWidth(m.scroll.ContentWidth())
		m.uploader.SetWidth(m.scroll.ContentWidth())
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.scroll.Update(msg)

	case uploader.PickFinishedMsg:
		return m, m.uploader.Update(msg)

	case uploader.PickCancelledMsg:
		m.publish(eventbus.PickCancelledEvent{})
		return m, nil

	case uploader.PickFailedMsg:
		m.publish(eventbus.PickFailedEvent{Err: msg.Err})
		return m, m.setStatus(fmt.Sprintf("Could not add documents: %v", msg.Err), true)

	case uploader.CopiedMsg:
		if msg.Err != nil {
			logrus.WithError(msg.Err).Warn("clipboard: copy failed")
			return m, m.setStatus("Clipboard unavailable", true)
		}
		return m, m.setStatus("Copied location of "+msg.Name, false)

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case tabReleaseMsg:
		m.tabs.Release()
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMessage = ""
			m.statusIsError = false
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			logrus.WithError(msg.err).Warn("help pager failed")
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	// cursor blink and other text component messages
	return m, m.essay.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	typing := m.tabs.Active() == domain.TabHome && m.focus == focusEssay

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case !typing && key.Matches(msg, m.keys.QuitKey):
		return tea.Quit
	case key.Matches(msg, m.keys.Home):
		return m.switchTab(domain.TabHome)
	case key.Matches(msg, m.keys.Explore):
		return m.switchTab(domain.TabExplore)
	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		return m.scroll.Update(msg)
	case !typing && key.Matches(msg, m.keys.Help):
		return m.showHelp()
	}

	if m.tabs.Active() != domain.TabHome {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.NextFocus):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.PrevFocus):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	}

	if m.focus == focusUploader {
		return m.uploader.Update(msg)
	}

	cmd := m.essay.Update(msg)
	m.countWords()
	return cmd
}

func (m *Model) switchTab(tab domain.Tab) tea.Cmd {
	if !m.tabs.Press(tab) {
		return nil
	}
	m.scroll.Follow(0)
	return tea.Tick(tabPressDuration, func(t time.Time) tea.Msg {
		return tabReleaseMsg(t)
	})
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.essay.Blur()
	m.uploader.Blur()
	if f == focusUploader {
		m.uploader.Focus()
		return nil
	}
	return m.essay.Focus()
}

func (m *Model) countWords() {
	words := len(strings.Fields(m.essay.Value()))
	if words == m.words {
		return
	}
	m.words = words
	m.publish(eventbus.EssayChangedEvent{Words: words})
}

func (m *Model) setStatus(text string, isError bool) tea.Cmd {
	m.statusSeq++
	m.statusMessage = text
	m.statusIsError = isError
	seq := m.statusSeq
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) handleEvent(e eventbus.DomainEvent) tea.Cmd {
	switch event := e.(type) {
	case eventbus.ConfigSavedEvent:
		return m.setStatus("Config saved to "+event.Path, false)
	case eventbus.ConfigLoadedEvent:
		logrus.WithField("path", event.Path).Debug("ui: config loaded")
	}
	return nil
}

func (m *Model) showHelp() tea.Cmd {
	content := NewHelpRenderer(m.styles.Palette, m.keys, m.uploader.Keys()).Render()
	if m.helpOps == nil {
		return nil
	}
	return m.fetchHelpPager(content)
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	body, focusLine := m.screenBody()
	m.scroll.Follow(focusLine)
	m.scroll.SetContent(body)

	var helpKeys shortHelp
	helpKeys.screen = m.keys
	if m.tabs.Active() == domain.TabHome && m.focus == focusUploader {
		helpKeys.extra = m.uploader.Keys().ShortHelp()
	}

	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Body:          m.scroll.View(),
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		WordCount:     m.words,
		FileCount:     len(m.assignment.Files),
		HelpModel:     m.help,
		HelpKeys:      helpKeys,
		Tabs:          m.tabs,
		ReadyMarker:   m.e2e,
	})
}

// screenBody renders the active screen and the line to keep in view
func (m *Model) screenBody() (string, int) {
	if m.tabs.Active() == domain.TabExplore {
		return m.styles.Title.Render("Explore"), 0
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(m.config.UI.Title),
		m.styles.Subtitle.Render(m.config.UI.Subtitle),
	)
	spacer := strings.Repeat("\n", max(m.styles.SectionSpacing-1, 0))
	essay := m.essay.View()

	parts := []string{header, spacer, essay, spacer, m.uploader.View()}
	body := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if m.focus == focusEssay {
		return body, lipgloss.Height(header)
	}
	uploadTop := lipgloss.Height(lipgloss.JoinVertical(lipgloss.Left, header, spacer, essay, spacer))
	return body, uploadTop + m.uploader.FocusLine()
}
