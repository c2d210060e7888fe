package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"songbinder/internal/config"
	"songbinder/internal/store"
	"songbinder/internal/ui"
)

func main() {
	dbPath := flag.String("db", "", "path to the sqlite database (overrides config)")
	configPath := flag.String("config", "", "path to an alternate config file")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("songbinder.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	configSvc := config.NewService()
	var cfg *config.Config
	if *configPath != "" {
		cfg, err = configSvc.LoadFromPath(*configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}
	if *dbPath != "" {
		cfg.DatabasePath = *dbPath
	}

	// Open the database and make sure the starter binders exist
	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.Seed(cfg.SeedBinders); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding binders: %v\n", err)
		os.Exit(1)
	}

	// Create UI model
	uiModel, err := ui.New(st, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting: %v\n", err)
		os.Exit(1)
	}

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
