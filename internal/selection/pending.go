package selection

import (
	"sync"

	"scenegrip/internal/domain"
)

// clickKind discriminates the pending record variants
type clickKind int

const (
	// clickMouse carries a screen position still to be resolved
	clickMouse clickKind = iota
	// clickDirect carries an already resolved entity
	clickDirect
	// clickDeselect asks for the selection to be cleared
	clickDeselect
)

// pendingClick is the single unprocessed input record
type pendingClick struct {
	kind        clickKind
	pos         domain.ScreenPoint
	entity      domain.EntityID
	multiSelect bool
	notify      bool
	fromUser    bool
}

// pendingSlot hands the latest click from the input contexts to the render
// tick. Input arrives both from the TUI goroutine and from bus handlers, so
// the slot is mutex-guarded. A new record overwrites an unconsumed one; the
// latest click wins and superseded clicks are simply dropped.
type pendingSlot struct {
	mu    sync.Mutex
	set   bool
	click pendingClick
}

// put stores a record, replacing any unconsumed one
func (s *pendingSlot) put(c pendingClick) {
	s.mu.Lock()
	s.click = c
	s.set = true
	s.mu.Unlock()
}

// take returns the pending record and clears the slot
func (s *pendingSlot) take() (pendingClick, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return pendingClick{}, false
	}
	c := s.click
	s.set = false
	s.click = pendingClick{}
	return c, true
}
