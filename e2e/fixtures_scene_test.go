//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

// CreateTestWorkspace creates an isolated directory that serves as HOME,
// XDG_CONFIG_HOME and working directory for the app under test
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteSceneFile writes a scene description into the workspace and returns
// its absolute path
func (tf *TUITestFramework) WriteSceneFile(name, contents string) (string, error) {
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteConfigFile writes an app config where the isolated XDG_CONFIG_HOME
// will resolve it
func (tf *TUITestFramework) WriteConfigFile(contents string) (string, error) {
	dir := filepath.Join(tf.workspace, "scenegrip")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// twoBoxScene holds two entities at known cells: alpha covers columns 5-11 in
// rows 4-6 of the canvas, omega covers columns 17-23 in the same rows
const twoBoxScene = `name = "two boxes"

[camera]
origin = [0.0, 0.0]
cells_per_unit = 1.0

[[entities]]
name = "alpha"
kind = "model"
position = [8.0, 5.0]
size = [6.0, 3.0]
glyph = "A"
color = "#ff5f5f"

[[entities]]
name = "omega"
kind = "marker"
position = [20.0, 5.0]
size = [6.0, 3.0]
glyph = "O"
color = "#5fff87"
`
