package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering a frame
type ViewState struct {
	Width         int
	Height        int
	Body          string // already scrolled screen body
	StatusMessage string
	StatusIsError bool
	WordCount     int
	FileCount     int
	HelpModel     help.Model
	HelpKeys      help.KeyMap
	Tabs          *TabBar
	ReadyMarker   bool
}

// Renderer composes the screen body with the status line, help and tab bar
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// ChromeHeight is the number of rows used below the body
func (r *Renderer) ChromeHeight() int {
	// status, help, tab bar border and tab bar
	return 4
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	var b strings.Builder
	b.WriteString(state.Body)
	b.WriteString("\n")
	b.WriteString(r.renderStatus(state))
	b.WriteString("\n")
	if state.HelpKeys != nil {
		b.WriteString(r.styles.Help.Render(state.HelpModel.View(state.HelpKeys)))
	}
	b.WriteString("\n")
	if state.Tabs != nil {
		b.WriteString(state.Tabs.View(state.Width))
	}
	if state.ReadyMarker {
		// e2e tests wait for this
		b.WriteString("\n__READY__")
	}
	return b.String()
}

func (r *Renderer) renderStatus(state ViewState) string {
	counts := r.styles.Status.Render(wordLabel(state.WordCount) + " · " + fileLabel(state.FileCount))
	if state.StatusMessage == "" {
		return counts
	}
	style := r.styles.StatusSuccess
	if state.StatusIsError {
		style = r.styles.StatusError
	}
	msg := style.Render(state.StatusMessage)
	gap := max(state.Width-lipgloss.Width(counts)-lipgloss.Width(msg), 1)
	return counts + strings.Repeat(" ", gap) + msg
}

func wordLabel(n int) string {
	if n == 1 {
		return "1 word"
	}
	return fmt.Sprintf("%d words", n)
}

func fileLabel(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}
