package views

import (
	"github.com/charmbracelet/lipgloss"

	"essaydesk/internal/domain"
)

var tabGlyphs = map[domain.Tab]string{
	domain.TabHome:    "⌂",
	domain.TabExplore: "◎",
}

// TabBar renders the bottom tab buttons
type TabBar struct {
	styles  *Styles
	tabs    []domain.Tab
	active  domain.Tab
	pressed domain.Tab
	isPress bool
}

// NewTabBar creates a tab bar with the given tabs, first one active
func NewTabBar(styles *Styles, tabs ...domain.Tab) *TabBar {
	tb := &TabBar{styles: styles, tabs: tabs}
	if len(tabs) > 0 {
		tb.active = tabs[0]
	}
	return tb
}

// Active returns the selected tab
func (tb *TabBar) Active() domain.Tab {
	return tb.active
}

// Tabs returns the tabs in display order
func (tb *TabBar) Tabs() []domain.Tab {
	return append([]domain.Tab(nil), tb.tabs...)
}

// Press selects a tab and shows it in its pressed state until Release.
// Unknown tabs are ignored.
func (tb *TabBar) Press(tab domain.Tab) bool {
	for _, t := range tb.tabs {
		if t == tab {
			tb.active = tab
			tb.pressed = tab
			tb.isPress = true
			return true
		}
	}
	return false
}

// Release ends the pressed state
func (tb *TabBar) Release() {
	tb.isPress = false
}

// View renders the buttons spread across width
func (tb *TabBar) View(width int) string {
	if len(tb.tabs) == 0 {
		return ""
	}
	cell := max(width/len(tb.tabs), 1)

	buttons := make([]string, 0, len(tb.tabs))
	for _, t := range tb.tabs {
		style := tb.styles.TabInactive
		switch {
		case tb.isPress && t == tb.pressed:
			style = tb.styles.TabPressed
		case t == tb.active:
			style = tb.styles.TabActive
		}
		label := style.Render(tabGlyphs[t] + " " + t.Title())
		buttons = append(buttons, lipgloss.PlaceHorizontal(cell, lipgloss.Center, label))
	}
	return tb.styles.TabBar.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
}
