package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config holds everything a route run needs.
type Config struct {
	MapPath     string // .hcl map file
	MapName     string // map block label; empty selects the first block
	MaxDistance int    // hop limit, 0 = none
	NoColor     bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.MapPath == "" {
		return nil, errors.New("MapPath is a required configuration field and cannot be empty")
	}
	if cfg.MaxDistance < 0 {
		return nil, fmt.Errorf("invalid max-distance %d: must be >= 0", cfg.MaxDistance)
	}

	return &cfg, nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("leeroute", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
leeroute - shortest 4-connected route on a grid map.

Usage:
  leeroute [options] MAP_PATH

Arguments:
  MAP_PATH
    Path to an .hcl file with one or more map blocks.

Options:
`)
		flagSet.PrintDefaults()
	}

	mapNameFlag := flagSet.String("map", "", "Name of the map block to route on. Defaults to the first block.")
	maxDistanceFlag := flagSet.Int("max-distance", 0, "Give up beyond this many hops. 0 is unlimited.")
	noColorFlag := flagSet.Bool("no-color", false, "Disable ANSI colours in the rendered map.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No map path provided, printing usage.")
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "missing MAP_PATH argument"}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "expected exactly one MAP_PATH argument"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := NewConfig(Config{
		MapPath:     flagSet.Arg(0),
		MapName:     *mapNameFlag,
		MaxDistance: *maxDistanceFlag,
		NoColor:     *noColorFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
