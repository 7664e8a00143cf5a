package logic

// Navigator handles panel cursor movement and viewport scrolling over a
// flat list of items
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 20}
}

// SetTotalItems updates the list length and clamps the cursor into range
func (n *Navigator) SetTotalItems(total int) {
	n.totalItems = total
	if n.selectedIndex >= total {
		n.selectedIndex = total - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
	n.ensureSelectedVisible()
}

// SetViewportHeight updates the number of visible rows
func (n *Navigator) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	n.viewportHeight = height
	n.ensureSelectedVisible()
}

// SelectedIndex returns the current cursor position
func (n *Navigator) SelectedIndex() int {
	return n.selectedIndex
}

// ViewportOffset returns the index of the first visible row
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// SetSelectedIndex moves the cursor and keeps it visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	n.selectedIndex = index
	n.clamp()
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// Up moves the cursor one row up
func (n *Navigator) Up() (int, int) {
	return n.SetSelectedIndex(n.selectedIndex - 1)
}

// Down moves the cursor one row down
func (n *Navigator) Down() (int, int) {
	return n.SetSelectedIndex(n.selectedIndex + 1)
}

// PageUp moves the cursor up by one viewport height
func (n *Navigator) PageUp() (int, int) {
	return n.SetSelectedIndex(n.selectedIndex - n.viewportHeight)
}

// PageDown moves the cursor down by one viewport height
func (n *Navigator) PageDown() (int, int) {
	return n.SetSelectedIndex(n.selectedIndex + n.viewportHeight)
}

// Home moves the cursor to the first row
func (n *Navigator) Home() (int, int) {
	return n.SetSelectedIndex(0)
}

// End moves the cursor to the last row
func (n *Navigator) End() (int, int) {
	return n.SetSelectedIndex(n.totalItems - 1)
}

func (n *Navigator) clamp() {
	if n.selectedIndex >= n.totalItems {
		n.selectedIndex = n.totalItems - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
}

// ensureSelectedVisible adjusts the viewport so the cursor stays on screen
func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
