package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/quicknav/internal/app"
	"github.com/atomicstack/quicknav/internal/input"
	"github.com/atomicstack/quicknav/internal/ui/state"
	"github.com/pelletier/go-toml/v2"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	File     string
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose     bool
	ListScreens bool
}

const (
	envConfigFile     = "QUICKNAV_CONFIG"
	envHost           = "QUICKNAV_HOST"
	envStickThreshold = "QUICKNAV_STICK_THRESHOLD"
	envBoundary       = "QUICKNAV_BOUNDARY"
	envRootMenu       = "QUICKNAV_ROOT_MENU"
	envWidth          = "QUICKNAV_WIDTH"
	envHeight         = "QUICKNAV_HEIGHT"
	envShowFooter     = "QUICKNAV_FOOTER"
	envVerbose        = "QUICKNAV_VERBOSE"
	envTrace          = "QUICKNAV_TRACE"
	envLogFile        = "QUICKNAV_LOG_FILE"
)

// fileSettings mirrors the optional TOML file. Values present in the file
// replace the built in defaults; environment and flags override both.
type fileSettings struct {
	Host           string  `toml:"host"`
	StickThreshold float64 `toml:"stick_threshold"`
	Boundary       string  `toml:"boundary"`
	RootMenu       string  `toml:"root_menu"`
	LogFile        string  `toml:"log_file"`
	Trace          bool    `toml:"trace"`
	Verbose        bool    `toml:"verbose"`
	Width          int     `toml:"width"`
	Height         int     `toml:"height"`
	Footer         bool    `toml:"footer"`
}

func defaultSettings() fileSettings {
	return fileSettings{
		Host:           string(app.HostTerminal),
		StickThreshold: float64(input.DefaultStickThreshold),
		Boundary:       state.BoundaryClamp.String(),
	}
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	path := configFlag(args, envOrDefault(env, envConfigFile, ""))
	defaults := defaultSettings()
	if path != "" {
		loaded, err := readFile(path, defaults)
		if err != nil {
			return Config{}, err
		}
		defaults = loaded
	}

	fs := flag.NewFlagSet("quicknav", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configFile := fs.String("config", path, "path to a TOML configuration file")
	host := fs.String("host", envOrDefault(env, envHost, defaults.Host), "front end to run: terminal, window or tcell")
	threshold := fs.Float64("stick-threshold", envOrFloat(env, envStickThreshold, defaults.StickThreshold), "analog stick deflection that counts as a step, in (0,1]")
	boundary := fs.String("boundary", envOrDefault(env, envBoundary, defaults.Boundary), "cursor behaviour past the first or last row: clamp or wrap")
	rootMenu := fs.String("root-menu", envOrDefault(env, envRootMenu, defaults.RootMenu), "open the menu on this screen instead of the main menu")
	width := fs.Int("width", envOrInt(env, envWidth, defaults.Width), "desired viewport width (0 uses the terminal or window default)")
	height := fs.Int("height", envOrInt(env, envHeight, defaults.Height), "desired viewport height (0 uses the terminal or window default)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, defaults.Footer), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, defaults.Trace), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, defaults.Verbose), "print success messages for actions")
	list := fs.Bool("list", false, "print the menu screens and exit")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, defaults.LogFile), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Host:           app.Host(*host),
			RootMenu:       *rootMenu,
			StickThreshold: float32(*threshold),
			Boundary:       *boundary,
			Width:          *width,
			Height:         *height,
			ShowFooter:     *footer,
			Verbose:        *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose:     *verbose,
			ListScreens: *list,
		},
		File: *configFile,
		Flags: map[string]string{
			"config":         *configFile,
			"host":           *host,
			"stickThreshold": strconv.FormatFloat(*threshold, 'f', -1, 32),
			"boundary":       *boundary,
			"rootMenu":       *rootMenu,
			"width":          strconv.Itoa(*width),
			"height":         strconv.Itoa(*height),
			"footer":         strconv.FormatBool(*footer),
			"trace":          strconv.FormatBool(*trace),
			"verbose":        strconv.FormatBool(*verbose),
			"logFile":        *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// configFlag finds -config ahead of the full parse so the file can seed the
// flag defaults.
func configFlag(args []string, fallback string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(name, "config=") {
			return strings.TrimPrefix(name, "config=")
		}
	}
	return fallback
}

func readFile(path string, defaults fileSettings) (fileSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaults, fmt.Errorf("read config %s: %w", path, err)
	}
	settings := defaults
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&settings); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return defaults, fmt.Errorf("parse config %s: %s", path, strict.String())
		}
		return defaults, fmt.Errorf("parse config %s: %w", path, err)
	}
	return settings, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects settings the hosts cannot run with.
func Validate(cfg Config) error {
	if _, err := app.ParseHost(string(cfg.App.Host)); err != nil {
		return err
	}
	if t := cfg.App.StickThreshold; t <= 0 || t > 1 {
		return fmt.Errorf("stick threshold must be in (0,1] (got %v)", t)
	}
	if _, err := state.ParseBoundary(cfg.App.Boundary); err != nil {
		return err
	}
	return nil
}
