package ui

import (
	"time"

	"scenegrip/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for render ticks and animations
type tickMsg time.Time

// logPagerMsg contains the result of showing the event log in the pager
type logPagerMsg struct {
	err error
}

// helpPagerMsg contains the result of showing the help screen in the pager
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
