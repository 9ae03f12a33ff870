package views

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ThemedScroll is a padded, scrollable screen body
type ThemedScroll struct {
	vp      viewport.Model
	padding lipgloss.Style
	follow  int // line that must stay visible, -1 for none
}

// NewThemedScroll creates a scroll container using the screen padding
func NewThemedScroll(styles *Styles) *ThemedScroll {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	return &ThemedScroll{vp: vp, padding: styles.ScreenPadding, follow: -1}
}

// SetSize sets the outer size of the container
func (s *ThemedScroll) SetSize(width, height int) {
	s.vp.Width = max(width, 0)
	s.vp.Height = max(height, 0)
}

// ContentWidth is the width available to children after padding
func (s *ThemedScroll) ContentWidth() int {
	return max(s.vp.Width-s.padding.GetHorizontalFrameSize(), 1)
}

// SetContent replaces the body; children are padded here
func (s *ThemedScroll) SetContent(content string) {
	s.vp.SetContent(s.padding.Render(content))
	if s.follow >= 0 {
		s.ensureVisible(s.follow + s.padding.GetPaddingTop())
	}
}

// Follow keeps the given content line in view on the next SetContent
func (s *ThemedScroll) Follow(line int) {
	s.follow = line
}

func (s *ThemedScroll) ensureVisible(line int) {
	if s.vp.Height <= 0 {
		return
	}
	if line < s.vp.YOffset {
		s.vp.SetYOffset(line)
	} else if line >= s.vp.YOffset+s.vp.Height {
		s.vp.SetYOffset(line - s.vp.Height + 1)
	}
}

// Update handles scrolling keys and the mouse wheel
func (s *ThemedScroll) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return cmd
}

// AtTop reports whether the view is scrolled to the top
func (s *ThemedScroll) AtTop() bool {
	return s.vp.AtTop()
}

// View renders the visible part of the body
func (s *ThemedScroll) View() string {
	return s.vp.View()
}
