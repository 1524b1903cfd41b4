package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"scrollwatch/internal/config"
	"scrollwatch/internal/eventbus"
	"scrollwatch/internal/logic"
	"scrollwatch/internal/ui"
)

const sampleLines = 500

func main() {
	// Parse command line arguments
	var (
		docPath     string
		configPath  string
		source      string
		throttleMs  int
		writeConfig bool
	)
	flag.StringVar(&docPath, "file", "", "Text file to scroll through (default: generated sample)")
	flag.StringVar(&docPath, "f", "", "Text file to scroll through (shorthand)")
	flag.StringVar(&configPath, "config", config.FileName, "Config file")
	flag.StringVar(&configPath, "c", config.FileName, "Config file (shorthand)")
	flag.StringVar(&source, "source", "", "Tracked surface: window, element or none")
	flag.StringVar(&source, "s", "", "Tracked surface (shorthand)")
	flag.IntVar(&throttleMs, "throttle", 0, "Throttle window in milliseconds")
	flag.IntVar(&throttleMs, "t", 0, "Throttle window in milliseconds (shorthand)")
	flag.BoolVar(&writeConfig, "write-config", false, "Save the effective settings to the config file")
	flag.Parse()

	if docPath == "" && flag.NArg() > 0 {
		docPath = flag.Arg(0)
	}

	// Hold log output until the configured log file is open
	var early bytes.Buffer
	log.SetOutput(&early)

	// Create event bus
	bus := eventbus.New()
	stopLifecycleLog := subscribeLifecycleLog(bus)

	// Load configuration; flags override the file
	cfg, err := config.NewConfigServiceWithBus(configPath, bus).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if source != "" {
		cfg.Source = source
	}
	if throttleMs != 0 {
		cfg.ThrottleMs = throttleMs
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Load the document before the terminal is taken over
	title := "sample"
	lines := ui.SampleDocument(sampleLines)
	if docPath != "" {
		lines, err = ui.LoadDocument(docPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		title = filepath.Base(docPath)
	}

	// Set up logging
	logFile, err := openLog(cfg.LogFile, &early)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
	}
	log.Printf("Starting scrollwatch: source=%s throttle=%dms document=%s (%d lines)", cfg.Source, cfg.ThrottleMs, title, len(lines))

	// Keep the published snapshots for the history pager
	store := logic.NewMemorySnapshotStore(cfg.HistorySize)
	stopRecording := logic.RecordSnapshots(bus, store)

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, store, title, lines)
	if os.Getenv("SCROLLWATCH_E2E_TEST") == "1" {
		uiModel.EnableReadyMarker()
	}

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)

	// Forward events to the event channel
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventSnapshotPublished,
		eventbus.EventError,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(t, forwardEvent)
	}

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	if writeConfig {
		configSvc := config.NewConfigServiceWithBus(configPath, bus)
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Failed to save config: %v", err)
		} else {
			log.Printf("Config saved to %s", configPath)
		}
	}

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		uiModel.Shutdown()
		bus.Close()
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Cleanup: the tracker stops before the bus closes
	uiModel.Shutdown()
	stopRecording()
	stopLifecycleLog()
	bus.Close()
	close(eventChan)
}
