package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
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

	// Load configuration
	configSvc := config.NewConfigService()
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		// Use default config
		cfg = config.DefaultConfig()
	}

	// Create event bus
	bus := eventbus.New()

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

	bus.Publish(eventbus.AppReadyEvent{})

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	loader.Stop()
	bus.Close()
	close(eventChan)
	cancel()
}
