package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"scenegrip/internal/config"
	"scenegrip/internal/eventbus"
	"scenegrip/internal/registry"
	"scenegrip/internal/sceneload"
	"scenegrip/internal/selection"
	"scenegrip/internal/ui"
)

func main() {
	// Parse command line arguments
	var scenePath string
	var configPath string
	flag.StringVar(&scenePath, "scene", "", "Scene file to load (TOML)")
	flag.StringVar(&scenePath, "s", "", "Scene file to load (shorthand)")
	flag.StringVar(&configPath, "config", "", "Config file path")
	flag.Parse()

	// A bare argument is also accepted as the scene file
	if scenePath == "" && flag.NArg() > 0 {
		scenePath = flag.Arg(0)
	}

	// Set up logging
	logFile, err := os.OpenFile("scenegrip.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadConfig(configSvc, configPath)

	// A scene given on the command line wins over the configured one
	if scenePath != "" {
		cfg.Scene.Path = scenePath
	}

	// Initialize services
	store := registry.NewMemoryStore()
	loader := sceneload.NewService(bus, store, cfg.Scene.Camera)
	manager := selection.NewManager(loader, cfg.Scene.Camera, bus)

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, manager, loader)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			// Channel full, drop event
			log.Println("Event channel full, dropping event")
		}
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventSceneLoadStarted,
		eventbus.EventSceneLoaded,
		eventbus.EventEntitiesRegistered,
		eventbus.EventSelectionChanged,
		eventbus.EventDeselectAll,
		eventbus.EventTransformModeChanged,
		eventbus.EventError,
		eventbus.EventConfigLoaded,
		eventbus.EventConfigSaved,
		eventbus.EventAppReady,
	} {
		bus.Subscribe(eventType, forwardEvent)
	}

	// The e2e test driver waits for this marker before sending input
	if os.Getenv("SCENEGRIP_E2E_TEST") != "" {
		var readyOnce sync.Once
		bus.Subscribe(eventbus.EventSceneLoaded, func(e eventbus.DomainEvent) {
			readyOnce.Do(func() {
				fmt.Fprintln(os.Stderr, "__READY__")
			})
		})
	}

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Start the initial scene load
	if err := loader.StartLoad(ctx, cfg.Scene.Path); err != nil {
		log.Printf("Initial scene load: %v", err)
	}

	bus.Publish(eventbus.AppReadyEvent{HasExistingConfig: configPath != ""})

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup: stop producers before draining the bus, then release the pump
	loader.Stop()
	bus.Close()
	close(eventChan)
	cancel()
}

// loadConfig loads the config from the given path, or from the default
// location when none is given. A missing default config is created so the
// user has a file to edit.
func loadConfig(configSvc config.ConfigService, path string) *config.Config {
	if path != "" {
		cfg, err := configSvc.LoadFromPath(path)
		if err != nil {
			log.Printf("Error loading config from %s: %v", path, err)
			return config.DefaultConfig()
		}
		log.Printf("Loaded config from %s", path)
		return cfg
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return config.DefaultConfig()
	}

	// Write the config back so a first run leaves a file to edit
	if err := configSvc.Save(cfg); err != nil {
		log.Printf("Failed to save config: %v", err)
	}

	return cfg
}
