package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"go-contact-relay/config"
	"go-contact-relay/internal/form"
	"go-contact-relay/pkg/relayclient"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns stdout, so diagnostics go to a file when requested
	if os.Getenv("DEBUG") != "" {
		f, err := tea.LogToFile("debug.log", "form")
		if err != nil {
			fmt.Printf("Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	client := relayclient.New(cfg.RelayURL)
	p := tea.NewProgram(form.New(client), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
