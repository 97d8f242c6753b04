package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/quicknav/internal/logging/events"
	"github.com/atomicstack/quicknav/internal/menu"
	"github.com/atomicstack/quicknav/internal/ui"
	"github.com/atomicstack/quicknav/internal/ui/console"
	"github.com/atomicstack/quicknav/internal/ui/state"
	"github.com/atomicstack/quicknav/internal/ui/window"
	tea "github.com/charmbracelet/bubbletea"
)

// Host selects the front end that runs the menu.
type Host string

const (
	HostTerminal Host = "terminal"
	HostWindow   Host = "window"
	HostConsole  Host = "tcell"
)

// ParseHost accepts "terminal", "window" or "tcell".
func ParseHost(s string) (Host, error) {
	switch Host(s) {
	case "", HostTerminal:
		return HostTerminal, nil
	case HostWindow:
		return HostWindow, nil
	case HostConsole:
		return HostConsole, nil
	}
	return HostTerminal, fmt.Errorf("unknown host %q (want terminal, window or tcell)", s)
}

// Config describes user-provided application options.
type Config struct {
	Host           Host
	RootMenu       string
	StickThreshold float32
	Boundary       string
	Width          int
	Height         int
	ShowFooter     bool
	Verbose        bool
}

// Run builds the bundled menu tree and executes the selected host.
func Run(cfg Config) error {
	registry := menu.BuildRegistry()
	if err := registry.Validate(); err != nil {
		return fmt.Errorf("menu tree: %w", err)
	}
	boundary, err := state.ParseBoundary(cfg.Boundary)
	if err != nil {
		return err
	}
	defer events.App.Stop(string(cfg.Host))
	switch cfg.Host {
	case HostWindow:
		return window.Run(window.Config{
			Registry:       registry,
			RootMenu:       menu.ID(cfg.RootMenu),
			Handler:        menu.DefaultHandler,
			StickThreshold: cfg.StickThreshold,
			Boundary:       boundary,
			Width:          cfg.Width,
			Height:         cfg.Height,
			ShowFooter:     cfg.ShowFooter,
			Verbose:        cfg.Verbose,
		})
	case HostConsole:
		return console.Run(console.Config{
			Registry:       registry,
			RootMenu:       menu.ID(cfg.RootMenu),
			Handler:        menu.DefaultHandler,
			StickThreshold: cfg.StickThreshold,
			Boundary:       boundary,
			ShowFooter:     cfg.ShowFooter,
			Verbose:        cfg.Verbose,
		})
	default:
		return runTerminal(ui.Config{
			Registry:       registry,
			RootMenu:       menu.ID(cfg.RootMenu),
			Handler:        menu.DefaultHandler,
			StickThreshold: cfg.StickThreshold,
			Boundary:       boundary,
			Width:          cfg.Width,
			Height:         cfg.Height,
			ShowFooter:     cfg.ShowFooter,
			Verbose:        cfg.Verbose,
		})
	}
}

func runTerminal(cfg ui.Config) error {
	model, err := ui.NewModel(cfg)
	if err != nil {
		return fmt.Errorf("open menu: %w", err)
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
