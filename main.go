package main

import (
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/quicknav/internal/app"
	"github.com/atomicstack/quicknav/internal/config"
	"github.com/atomicstack/quicknav/internal/format/table"
	"github.com/atomicstack/quicknav/internal/logging"
	"github.com/atomicstack/quicknav/internal/logging/events"
	"github.com/atomicstack/quicknav/internal/menu"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if runtimeCfg.Features.ListScreens {
		size, _ := terminalSize(os.Stdout)
		listScreens(os.Stdout, menu.BuildRegistry(), size.Width)
		return
	}

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// listScreens prints the menu tree as an aligned table. A positive width
// clips each line to the terminal.
func listScreens(w io.Writer, registry *menu.Registry, width int) {
	for _, line := range table.Format(registry.Describe(), []table.Alignment{table.AlignLeft, table.AlignRight}) {
		if width > 0 {
			line = runewidth.Truncate(line, width, "")
		}
		fmt.Fprintln(w, line)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"host":   string(cfg.App.Host),
	}
	if cfg.File != "" {
		payload["configFile"] = cfg.File
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	if size, ok := terminalSize(os.Stdin, os.Stdout, os.Stderr); ok {
		payload["tty"] = size
	}
	return payload
}

type ttySize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// terminalSize reports the size of the first file attached to a terminal.
func terminalSize(files ...*os.File) (ttySize, bool) {
	for _, f := range files {
		fd := int(f.Fd())
		if fd < 0 || !term.IsTerminal(fd) {
			continue
		}
		if width, height, err := term.GetSize(fd); err == nil {
			return ttySize{Source: f.Name(), Width: width, Height: height}, true
		}
	}
	return ttySize{}, false
}
