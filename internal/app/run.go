package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/blueprintgo/internal/compiler"
	"github.com/vk/blueprintgo/internal/ctxlog"
	"github.com/vk/blueprintgo/internal/interp"
)

// Run loads, compiles, and executes the configured blueprint. The lifecycle
// ordering contract the core leaves to its host is honored here:
// construction script exactly once, then begin-play once, then ticks.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run started.", "path", cfg.BlueprintPath)

	graph, err := a.loadGraph(ctx, cfg.BlueprintPath)
	if err != nil {
		return fmt.Errorf("loading blueprint: %w", err)
	}
	a.logger.Debug("Blueprint loaded.", "nodes", len(graph.Nodes), "links", len(graph.Links))

	compiled, err := compiler.Compile(graph)
	if err != nil {
		var ce *compiler.CompileError
		if errors.As(err, &ce) {
			a.logger.Error("Blueprint failed to compile.", "kind", string(ce.Kind), "node", ce.Node, "pin", ce.Pin)
		}
		return fmt.Errorf("compiling blueprint: %w", err)
	}
	a.logger.Debug("Blueprint compiled.",
		"begin_play", compiled.BeginPlayEntry,
		"construction", compiled.ConstructionEntry,
		"tick", compiled.TickEntry)

	if cfg.CheckOnly {
		fmt.Fprintln(a.outW, "ok")
		return nil
	}

	it := interp.New(compiled)

	a.flush(it.RunConstructionScript(ctx))
	a.flush(it.RunBeginPlay(ctx))
	for i := 0; i < cfg.Ticks; i++ {
		a.flush(it.Tick(ctx, float32(cfg.Dt)))
	}

	a.logger.Debug("App.Run finished.")
	return nil
}

// flush routes one run's events to the host surfaces: prints to stdout,
// node visits to debug logs.
func (a *App) flush(out interp.Output) {
	for _, ev := range out.Events {
		switch ev.Kind {
		case interp.EventPrint:
			fmt.Fprintln(a.outW, ev.Text)
		case interp.EventEnterNode:
			a.logger.Debug("Entered node.", "node", ev.Node)
		}
	}
}
