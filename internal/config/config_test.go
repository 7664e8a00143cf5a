package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 1, cfg.Version)
	require.Equal(t, "", cfg.Scene.Path)
	require.Equal(t, "main", cfg.Scene.Camera)
	require.Equal(t, "ctrl", cfg.Selection.Modifier)
	require.True(t, cfg.UISettings.ShowHelpBar)
	require.Equal(t, "#ffffff", cfg.UISettings.Highlight)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	cs := &configService{}
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Scene.Path = "/scenes/yard.toml"
	cfg.Scene.Camera = "viewer"
	cfg.Selection.Modifier = "alt"
	cfg.UISettings.Highlight = "#00ff00"

	require.NoError(t, cs.SaveToPath(cfg, path))

	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoadFromMissingPathErrors(t *testing.T) {
	cs := &configService{}

	_, err := cs.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadNormalizesSparseFile(t *testing.T) {
	cs := &configService{}
	path := filepath.Join(t.TempDir(), "config.toml")

	// A hand-written file with only a scene path
	content := "version = 1\n\n[scene]\npath = \"demo.toml\"\n\n[selection]\nmodifier = \"meta\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "demo.toml", cfg.Scene.Path)
	require.Equal(t, "main", cfg.Scene.Camera)
	// Unknown modifiers fall back to ctrl
	require.Equal(t, "ctrl", cfg.Selection.Modifier)
	require.Equal(t, "#ffffff", cfg.UISettings.Highlight)
}
