package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/leewave/grid"
	"github.com/katalvlaran/leewave/internal/cli"
	"github.com/katalvlaran/leewave/internal/ctxlog"
	"github.com/katalvlaran/leewave/internal/mapfile"
	"github.com/katalvlaran/leewave/internal/render"
	"github.com/katalvlaran/leewave/wavefront"
)

// main is the entrypoint for the leeroute command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
// Rendered output goes to outW, logs to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := ctxlog.New(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)

	return route(ctx, outW, cfg)
}

// route loads the selected map, searches it and renders the outcome.
// A missing path is a normal answer, not an error.
func route(ctx context.Context, outW io.Writer, cfg *cli.Config) error {
	logger := ctxlog.FromContext(ctx)

	m, err := mapfile.Load(cfg.MapPath, cfg.MapName)
	if err != nil {
		return err
	}
	logger.Info("Map loaded.", "map", m.Name, "height", m.Cells.Rows(), "width", m.Cells.Cols(),
		"from", m.From.String(), "to", m.To.String())

	var view grid.View[rune] = m.Cells
	res, err := wavefront.FindPath(view, m.From, m.To, m.Blank,
		wavefront.WithContext(ctx),
		wavefront.WithMaxDistance(cfg.MaxDistance),
		wavefront.WithOnRound(func(round, frontier int) error {
			logger.Debug("Expanding wavefront.", "round", round, "frontier", frontier)
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("map %q: %w", m.Name, err)
	}
	logger.Info("Search finished.", "found", res.Found, "visited", res.Visited, "rounds", res.Rounds)

	if err = render.Route(outW, view, res.Path, !cfg.NoColor); err != nil {
		return err
	}
	if !res.Found {
		_, err = fmt.Fprintln(outW, "no path")
		return err
	}
	_, err = fmt.Fprintf(outW, "distance: %d\n", res.Distance)

	return err
}
