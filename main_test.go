package main

import (
	"os"
	"strings"
	"testing"

	"github.com/atomicstack/quicknav/internal/app"
	"github.com/atomicstack/quicknav/internal/config"
	"github.com/atomicstack/quicknav/internal/menu"
	"github.com/mattn/go-runewidth"
)

func TestTerminalSizeSkipsRegularFiles(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "tty")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer f.Close()
	if size, ok := terminalSize(f); ok {
		t.Fatalf("expected no terminal, got %+v", size)
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Host:           app.HostWindow,
			RootMenu:       "settings",
			StickThreshold: 0.2,
			Boundary:       "wrap",
			Width:          80,
			Height:         24,
			ShowFooter:     true,
			Verbose:        true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"host":    "window",
			"width":   "80",
			"height":  "24",
			"footer":  "true",
			"verbose": "true",
		},
		File: "quicknav.toml",
		Args: []string{"-host", "window"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["host"] != "window" {
		t.Fatalf("expected host flag %q, got %v", "window", flagsValue["host"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["verbose"] != "true" {
		t.Fatalf("expected verbose flag true, got %v", flagsValue["verbose"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if payload["host"] != "window" {
		t.Fatalf("expected host window, got %v", payload["host"])
	}
	if payload["configFile"] != "quicknav.toml" {
		t.Fatalf("expected config file, got %v", payload["configFile"])
	}

	if tty, ok := payload["tty"]; ok {
		if _, isSize := tty.(ttySize); !isSize {
			t.Fatalf("expected tty size in payload, got %T", tty)
		}
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestListScreensPrintsTable(t *testing.T) {
	var out strings.Builder
	listScreens(&out, menu.BuildRegistry(), 0)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d: %q", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "SCREEN") {
		t.Fatalf("expected header first, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "main ") || !strings.Contains(lines[1], "Main Menu") {
		t.Fatalf("expected root row second, got %q", lines[1])
	}
}

func TestListScreensClipsToWidth(t *testing.T) {
	var out strings.Builder
	listScreens(&out, menu.BuildRegistry(), 12)
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if w := runewidth.StringWidth(line); w > 12 {
			t.Fatalf("expected line within 12 cells, got %d: %q", w, line)
		}
	}
}
