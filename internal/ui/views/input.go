package views

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ThemedInput is a bordered text field. Giving it a height makes it a
// multi-line area; otherwise it is a single-line input.
type ThemedInput struct {
	area      textarea.Model
	line      textinput.Model
	multiline bool
	focused   bool
	HasError  bool
	palette   Palette
	width     int
}

// NewThemedInput creates an input; height <= 0 means single line
func NewThemedInput(placeholder string, height int, palette Palette) *ThemedInput {
	in := &ThemedInput{palette: palette, multiline: height > 0, width: 40}

	placeholderStyle := lipgloss.NewStyle().Foreground(palette.Icon)
	textStyle := lipgloss.NewStyle().Foreground(palette.Text)

	if in.multiline {
		ta := textarea.New()
		ta.Placeholder = placeholder
		ta.ShowLineNumbers = false
		ta.Prompt = ""
		ta.SetHeight(height)
		ta.CharLimit = 0
		ta.FocusedStyle.Placeholder = placeholderStyle
		ta.BlurredStyle.Placeholder = placeholderStyle
		ta.FocusedStyle.Text = textStyle
		ta.BlurredStyle.Text = textStyle
		ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
		in.area = ta
	} else {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = ""
		ti.PlaceholderStyle = placeholderStyle
		ti.TextStyle = textStyle
		in.line = ti
	}
	return in
}

// BorderColor follows the focus rule: error first, then focus, then the plain border
func (in *ThemedInput) BorderColor() lipgloss.AdaptiveColor {
	if in.HasError {
		return in.palette.Error
	}
	if in.focused {
		return in.palette.Tint
	}
	return in.palette.Border
}

// Focus gives the input keyboard focus
func (in *ThemedInput) Focus() tea.Cmd {
	in.focused = true
	if in.multiline {
		return in.area.Focus()
	}
	return in.line.Focus()
}

// Blur removes keyboard focus
func (in *ThemedInput) Blur() {
	in.focused = false
	if in.multiline {
		in.area.Blur()
		return
	}
	in.line.Blur()
}

// Focused reports whether the input has focus
func (in *ThemedInput) Focused() bool {
	return in.focused
}

// SetWidth sets the outer width including the border
func (in *ThemedInput) SetWidth(w int) {
	in.width = w
	inner := max(w-4, 1)
	if in.multiline {
		in.area.SetWidth(inner)
		return
	}
	in.line.Width = inner
}

// Value returns the current text
func (in *ThemedInput) Value() string {
	if in.multiline {
		return in.area.Value()
	}
	return in.line.Value()
}

// SetValue replaces the text
func (in *ThemedInput) SetValue(s string) {
	if in.multiline {
		in.area.SetValue(s)
		return
	}
	in.line.SetValue(s)
}

// Update forwards messages to the focused text component
func (in *ThemedInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if in.multiline {
		in.area, cmd = in.area.Update(msg)
	} else {
		in.line, cmd = in.line.Update(msg)
	}
	return cmd
}

// View renders the input inside its border
func (in *ThemedInput) View() string {
	var body string
	if in.multiline {
		body = in.area.View()
	} else {
		body = in.line.View()
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(in.BorderColor()).
		Padding(0, 1).
		Render(body)
}
