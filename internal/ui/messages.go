package ui

import (
	"time"

	"essaydesk/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tabReleaseMsg ends the pressed state of a tab button
type tabReleaseMsg time.Time

// clearStatusMsg clears the status line
type clearStatusMsg struct {
	seq int
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
