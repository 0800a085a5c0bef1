package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mfreeman451/networkhub/pkg/client"
	"github.com/mfreeman451/networkhub/pkg/dashboard"
)

func main() {
	var (
		addr     = flag.String("addr", "http://localhost:5000", "NetworkHub base URL")
		interval = flag.Duration("interval", 5*time.Second, "polling interval (e.g. 5s, 30s)")
	)

	flag.Parse()

	if *interval <= 0 {
		fmt.Fprintln(os.Stderr, "error: --interval must be positive")
		os.Exit(1)
	}

	c, err := client.New(*addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(dashboard.NewApp(c, *addr, *interval), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
