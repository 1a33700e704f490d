package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/officine/remise-tui/app"
	"github.com/officine/remise-tui/client"
	"github.com/officine/remise-tui/style"
)

var version = "dev"

func main() {
	profileFlag := flag.String("profile", "", "Named profile for state isolation (~/.remise/profiles/<name>)")
	noColor := flag.Bool("no-color", false, "Disable ANSI colors")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.BoolVar(showVersion, "V", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("remise-tui %s\n", version)
		os.Exit(0)
	}

	if *noColor {
		// Caller can set NO_COLOR=1 in the shell to disable colors.
		os.Setenv("NO_COLOR", "1")
	}

	baseURL := os.Getenv("REMISE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	token := os.Getenv("REMISE_TOKEN")

	home, _ := os.UserHomeDir()
	if *profileFlag != "" {
		app.ProfileDir = filepath.Join(home, ".remise", "profiles", *profileFlag)
	} else {
		app.ProfileDir = filepath.Join(home, ".remise")
	}
	os.MkdirAll(app.ProfileDir, 0o755)

	if token == "" {
		if data, err := os.ReadFile(filepath.Join(app.ProfileDir, "token")); err == nil {
			token = strings.TrimSpace(string(data))
		}
	}

	// Auto-detect terminal background and set theme before any rendering.
	if lipgloss.HasDarkBackground(os.Stdin, os.Stdout) {
		style.SetTheme("dark")
	} else {
		style.SetTheme("light")
	}

	c := client.New(baseURL)
	if token != "" {
		c.SetToken(token)
	}

	p := tea.NewProgram(app.New(c))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "remise-tui: %v\n", err)
		os.Exit(1)
	}
}
