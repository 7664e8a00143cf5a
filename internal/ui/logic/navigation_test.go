package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestNavigator(total, height int) *Navigator {
	n := NewNavigator()
	n.SetTotalItems(total)
	n.SetViewportHeight(height)
	return n
}

func TestNavigatorUpDown(t *testing.T) {
	n := newTestNavigator(10, 5)

	index, offset := n.Down()
	assert.Equal(t, 1, index)
	assert.Equal(t, 0, offset)

	index, _ = n.Up()
	assert.Equal(t, 0, index)

	// Up at the top stays put
	index, offset = n.Up()
	assert.Equal(t, 0, index)
	assert.Equal(t, 0, offset)
}

func TestNavigatorScrollsViewportDown(t *testing.T) {
	n := newTestNavigator(10, 3)

	for i := 0; i < 4; i++ {
		n.Down()
	}
	index, offset := n.SetSelectedIndex(n.SelectedIndex())
	assert.Equal(t, 4, index)
	// Cursor stays on the last visible row
	assert.Equal(t, 2, offset)
}

func TestNavigatorScrollsViewportUp(t *testing.T) {
	n := newTestNavigator(10, 3)
	n.End()

	index, offset := n.SetSelectedIndex(2)
	assert.Equal(t, 2, index)
	assert.Equal(t, 2, offset)
}

func TestNavigatorPageMovement(t *testing.T) {
	n := newTestNavigator(20, 5)

	index, _ := n.PageDown()
	assert.Equal(t, 5, index)

	index, _ = n.PageDown()
	assert.Equal(t, 10, index)

	index, _ = n.PageUp()
	assert.Equal(t, 5, index)
}

func TestNavigatorHomeEnd(t *testing.T) {
	n := newTestNavigator(20, 5)

	index, offset := n.End()
	assert.Equal(t, 19, index)
	assert.Equal(t, 15, offset)

	index, offset = n.Home()
	assert.Equal(t, 0, index)
	assert.Equal(t, 0, offset)
}

func TestNavigatorClampsWhenListShrinks(t *testing.T) {
	n := newTestNavigator(10, 5)
	n.End()

	n.SetTotalItems(3)
	assert.Equal(t, 2, n.SelectedIndex())

	n.SetTotalItems(0)
	assert.Equal(t, 0, n.SelectedIndex())

	// Movement on an empty list is a no-op
	index, offset := n.Down()
	assert.Equal(t, 0, index)
	assert.Equal(t, 0, offset)
}

func TestNavigatorSetSelectedIndexClamps(t *testing.T) {
	n := newTestNavigator(5, 10)

	index, _ := n.SetSelectedIndex(42)
	assert.Equal(t, 4, index)

	index, _ = n.SetSelectedIndex(-3)
	assert.Equal(t, 0, index)
}
