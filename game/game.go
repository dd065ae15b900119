// Package game wires the match core to its raylib collaborators: input
// sampling, rendering, audio and telemetry fan-out.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/blobvolley/config"
	"github.com/pthm-cable/blobvolley/systems"
	"github.com/pthm-cable/blobvolley/telemetry"
)

// Options holds game initialization options.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
}

// Game owns the match and drives it at one tick per update.
type Game struct {
	match *systems.Match
	rng   *rand.Rand

	audio     *audioBank
	tex       *textureBank
	collector *telemetry.Collector
	output    *telemetry.OutputManager

	logStats bool
	tick     int32
}

// NewGame creates a game instance from the loaded config.
func NewGame(opts Options) *Game {
	cfg := config.Cfg()

	g := &Game{
		rng:      rand.New(rand.NewSource(opts.Seed)),
		logStats: opts.LogStats,
	}
	g.match = systems.NewMatch(systems.ParamsFromConfig(cfg), g.rng)

	if opts.LogStats || opts.OutputDir != "" {
		windowSec := cfg.Telemetry.StatsWindow
		if opts.StatsWindowSec > 0 {
			windowSec = opts.StatsWindowSec
		}
		g.collector = telemetry.NewCollector(windowSec, cfg.Screen.TargetFPS)
	}

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("telemetry output disabled", "error", err)
		} else {
			g.output = om
		}
	}

	if !opts.Headless {
		g.audio = newAudioBank()
		g.tex = newTextureBank()
	}

	return g
}

// Update runs one tick from live input.
func (g *Game) Update() {
	g.step(readInput())
}

// UpdateHeadless runs one tick with no input, auto-starting a
// single-player match whenever one is not in progress. Used for soak
// runs and telemetry capture without a window.
func (g *Game) UpdateHeadless() {
	if g.match.State != systems.StatePlaying {
		g.match.StartMatch(systems.ModeSinglePlayer)
	}
	g.step(systems.InputFrame{})
}

func (g *Game) step(in systems.InputFrame) {
	g.match.Step(in)
	g.tick++

	events := g.match.DrainEvents()

	if g.audio != nil {
		g.audio.play(events)
		g.audio.updateMusic(g.match.State)
	}

	for _, ev := range events {
		switch ev.Type {
		case systems.EventScore:
			slog.Debug("point scored",
				"side", ev.Side.String(),
				"left", g.match.Player1.Score,
				"right", g.match.Player2.Score,
			)
		case systems.EventGameOver:
			slog.Info("match over",
				"winner", ev.Side.String(),
				"left", g.match.Player1.Score,
				"right", g.match.Player2.Score,
				"ticks", g.match.Timer,
			)
		}
	}

	if g.collector != nil {
		ws, done := g.collector.Record(g.tick, events, g.match.Player1.Score, g.match.Player2.Score)
		if done {
			g.flushWindow(ws)
		}
	}
}

func (g *Game) flushWindow(ws telemetry.WindowStats) {
	if g.logStats {
		slog.Info("stats window",
			"tick", ws.WindowEndTick,
			"sim_time", ws.SimTimeSec,
			"left", ws.LeftScore,
			"right", ws.RightScore,
			"points", ws.Points,
			"bounces", ws.Bounces,
			"rally_mean", ws.RallyLenMean,
			"rally_std", ws.RallyLenStd,
			"longest_rally", ws.LongestRally,
		)
	}
	if g.output != nil {
		if err := g.output.WriteWindow(ws); err != nil {
			slog.Error("telemetry write failed", "error", err)
		}
	}
}

// Tick returns the number of ticks stepped so far.
func (g *Game) Tick() int32 {
	return g.tick
}

// ShouldExit reports whether the exit menu option was confirmed.
func (g *Game) ShouldExit() bool {
	return g.match.ExitRequested
}

// Unload releases audio, texture and output resources.
func (g *Game) Unload() {
	if g.audio != nil {
		g.audio.unload()
	}
	if g.tex != nil {
		g.tex.unload()
	}
	if g.output != nil {
		if err := g.output.Close(); err != nil {
			slog.Error("closing telemetry output", "error", err)
		}
	}
}
