package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/blueprintgo/internal/asset"
	"github.com/vk/blueprintgo/internal/hcl"
	"github.com/vk/blueprintgo/internal/model"
)

// Config holds everything an App run needs.
type Config struct {
	// BlueprintPath points at an authored .hcl file (or directory), or a
	// persisted .blueprint asset.
	BlueprintPath string
	// Ticks is how many frames to simulate after begin-play.
	Ticks int
	// Dt is the fixed frame delta passed to each tick, in seconds.
	Dt float64
	// CheckOnly compiles and reports without running.
	CheckOnly bool
	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.BlueprintPath == "" {
		return nil, fmt.Errorf("blueprint path is required")
	}
	if cfg.Ticks < 0 {
		return nil, fmt.Errorf("ticks must not be negative")
	}
	if cfg.Dt <= 0 {
		cfg.Dt = 1.0 / 60.0
	}
	return &cfg, nil
}

// App is the CLI host around the blueprint core.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	loader *hcl.Loader
}

// New constructs an App with its own logger. Events go to outW; logs to errW.
func New(outW io.Writer, errW io.Writer, cfg *Config) *App {
	return &App{
		outW:   outW,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, errW),
		loader: hcl.NewLoader(),
	}
}

// loadGraph picks the loading path by file extension: persisted assets go
// through the envelope decoder, everything else through the HCL frontend.
func (a *App) loadGraph(ctx context.Context, path string) (*model.BlueprintGraph, error) {
	if strings.HasSuffix(path, asset.Ext) {
		g, err := asset.Load(path)
		if err != nil {
			// The decoder hands back a valid default graph; report and
			// keep going with it, mirroring how the engine treats a
			// corrupt resource.
			a.logger.Error("Failed to load blueprint asset, using empty graph.", "path", path, "error", err)
		}
		return g, nil
	}
	return a.loader.Load(ctx, path)
}
