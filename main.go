package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blobvolley/config"
	"github.com/pthm-cable/blobvolley/game"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config overriding the built-in defaults")
	headless := flag.Bool("headless", false, "run the simulation without a window")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "stop a headless run after this many ticks (0 = run forever)")
	logStats := flag.Bool("log-stats", false, "log windowed match stats")
	statsWindow := flag.Float64("stats-window", 0, "stats window in seconds (0 = config default)")
	outputDir := flag.String("output-dir", "", "directory for telemetry CSV output")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	config.MustInit(*configPath)
	cfg := config.Cfg()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	slog.Info("starting", "seed", *seed, "headless", *headless)

	if *outputDir != "" {
		if err := os.MkdirAll(*outputDir, 0o755); err != nil {
			slog.Error("creating output dir", "error", err)
			os.Exit(1)
		}
		// Snapshot the effective config next to the telemetry output so a
		// run can be reproduced later.
		if err := cfg.WriteYAML(filepath.Join(*outputDir, "config.yaml")); err != nil {
			slog.Error("writing config snapshot", "error", err)
		}
	}

	opts := game.Options{
		Seed:           *seed,
		Headless:       *headless,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
	}

	if *headless {
		runHeadless(opts, *maxTicks)
		return
	}

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Blob Volley")
	defer rl.CloseWindow()
	rl.SetExitKey(0) // ESC is a game input, not a quit key
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGame(opts)
	defer g.Unload()

	for !rl.WindowShouldClose() && !g.ShouldExit() {
		g.Update()
		g.Draw()
	}
}

func runHeadless(opts game.Options, maxTicks int) {
	g := game.NewGame(opts)
	defer g.Unload()

	for maxTicks == 0 || int(g.Tick()) < maxTicks {
		g.UpdateHeadless()
	}
	slog.Info("headless run complete", "ticks", g.Tick())
}
