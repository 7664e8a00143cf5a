//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// The sample scene puts the crate around cell (10,6), the lamp around (24,5)
// and the drone around (36,8) in scene coordinates. The canvas starts one row
// under the title, so a scene cell (x,y) is terminal cell (x,y+1).

func TestCanvasClickSelects(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp()
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("scenegrip"), "Should show scenegrip title")
	require.True(t, tf.SeePlain("Entities 4/4"), "Should list the sample entities")

	// Click the crate
	require.NoError(t, tf.ClickCell(10, 7))
	require.True(t, tf.SeePlain("1 selected"), "Click should select the crate")
	require.True(t, tf.SeePlain("[x] crate"), "Panel should mark the crate selected")
}

func TestModifierClickAccumulates(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp()
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.ClickCell(10, 7))
	require.True(t, tf.SeePlain("1 selected"), "First click should select the crate")

	// Ctrl-click the lamp to accumulate
	require.NoError(t, tf.CtrlClickCell(24, 6))
	require.True(t, tf.SeePlain("2 selected"), "Ctrl-click should add the lamp")
	require.True(t, tf.SeePlain("[x] lamp"), "Panel should mark the lamp selected")

	// Ctrl-click the drone as well
	require.NoError(t, tf.CtrlClickCell(36, 9))
	require.True(t, tf.SeePlain("3 selected"), "Ctrl-click should add the drone")
}

func TestPlainClickReplacesSelection(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp()
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.ClickCell(10, 7))
	require.True(t, tf.SeePlain("[x] crate"), "First click should select the crate")

	// A plain click elsewhere replaces rather than accumulates
	require.NoError(t, tf.ClickCell(24, 6))
	require.True(t, tf.SeePlain("[x] lamp"), "Plain click should move the selection to the lamp")
	require.True(t, tf.WaitForStatusMessage("1 selected", 2*time.Second), "Selection should stay at one entity")
}

func TestClickEmptySpaceDeselects(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp()
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.ClickCell(10, 7))
	require.True(t, tf.SeePlain("1 selected"), "Click should select the crate")

	// Click a cell with nothing under it
	require.NoError(t, tf.ClickCell(60, 18))
	require.True(t, tf.SeePlain("Selection cleared"), "Empty click should clear the selection")
}

func TestTransformModeForcesSingleSelection(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp()
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.SendKeys(KeyTransform))
	require.True(t, tf.SeePlain("TRANSFORM"), "Status should show transform mode")

	require.NoError(t, tf.ClickCell(10, 7))
	require.True(t, tf.SeePlain("[x] crate"), "Click should select the crate")

	// With a transform tool active the modifier no longer accumulates
	require.NoError(t, tf.CtrlClickCell(24, 6))
	require.True(t, tf.SeePlain("[x] lamp"), "Modifier click should replace while transforming")
}

func TestPanelClickSelectsRow(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp()
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Entities 4/4"), "Should list the sample entities")

	// The panel starts at column 90; its first entity row is terminal row 3
	require.NoError(t, tf.ClickCell(95, 4))
	require.True(t, tf.SeePlain("[x] lamp"), "Second panel row should select the lamp")
	require.True(t, tf.SeePlain("1 selected"), "Panel click should select one entity")
}
