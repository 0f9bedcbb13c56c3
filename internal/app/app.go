package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvmaze/maze"
)

// App encapsulates the application's configuration, output and logger.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config Config
	now    func() time.Time
}

// NewApp is the constructor for the main application. The edge listing goes to
// outW; logs go to logW through an isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: *cfg,
		now:    time.Now,
	}
}

// Run builds the maze, verifies it when asked, and writes the listing followed
// by a newline.
func (a *App) Run() error {
	seed := a.config.Seed
	if seed == 0 {
		seed = a.now().UnixNano()
	}
	a.logger.Info("Building maze.", "width", a.config.Width, "height", a.config.Height, "seed", seed)

	start := a.now()
	edges, err := maze.Build(a.config.Width, a.config.Height, maze.WithSeed(seed))
	if err != nil {
		return fmt.Errorf("failed to build maze: %w", err)
	}
	a.logger.Info("Maze built.", "edges", len(edges), "elapsed", a.now().Sub(start))

	if a.config.Verify {
		if err := maze.Validate(a.config.Width, a.config.Height, edges); err != nil {
			return fmt.Errorf("maze failed verification: %w", err)
		}
		a.logger.Info("Maze verified as a spanning tree.")
	}

	if err := maze.Format(a.outW, edges); err != nil {
		return fmt.Errorf("failed to write edge listing: %w", err)
	}
	if _, err := io.WriteString(a.outW, "\n"); err != nil {
		return fmt.Errorf("failed to write edge listing: %w", err)
	}
	a.logger.Debug("App.Run method finished.")

	return nil
}
