package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// PagerOps shows read-only text in the ov pager. It hands the terminal
// over to ov while it runs and restores it afterwards.
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// SetProgram sets the program reference after the program is created
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowText displays content using the ov pager
func (p *PagerOps) ShowText(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	// Create a reader from the content string
	reader := strings.NewReader(content)

	// Create oviewer root from the reader
	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	// Add vim-like navigation
	configureVimKeyBindings(&config)

	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}

// configureVimKeyBindings layers vim-style movement keys over ov's defaults
func configureVimKeyBindings(config *oviewer.Config) {
	if config.Keybind == nil {
		config.Keybind = map[string][]string{}
	}
	config.Keybind["exit"] = []string{"Escape", "q"}
	config.Keybind["down"] = []string{"Enter", "Down", "j"}
	config.Keybind["up"] = []string{"Up", "k"}
	config.Keybind["top"] = []string{"Home", "g"}
	config.Keybind["bottom"] = []string{"End", "G"}
	config.Keybind["page_up"] = []string{"PageUp", "ctrl+b"}
	config.Keybind["page_down"] = []string{"PageDown", "ctrl+f"}
}
