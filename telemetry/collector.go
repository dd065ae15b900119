package telemetry

import "github.com/pthm-cable/blobvolley/systems"

// Collector accumulates match events into fixed-size tick windows. It is
// a passive observer: the loop feeds it the drained event queue once per
// tick and flushes a WindowStats row when a window closes.
type Collector struct {
	windowTicks int
	tickRate    int

	windowStart int32
	rallyStart  int32

	bounces      int
	jumps        int
	points       int
	rallyLengths []float64
}

// NewCollector creates a collector with windows of windowSec seconds at
// the given tick rate.
func NewCollector(windowSec float64, tickRate int) *Collector {
	wt := int(windowSec * float64(tickRate))
	if wt < 1 {
		wt = 1
	}
	return &Collector{
		windowTicks: wt,
		tickRate:    tickRate,
	}
}

// Record ingests one tick's events. When the tick closes a window it
// returns the window's stats and true.
func (c *Collector) Record(tick int32, events []systems.Event, leftScore, rightScore int) (WindowStats, bool) {
	for _, ev := range events {
		switch ev.Type {
		case systems.EventBounce:
			c.bounces++
		case systems.EventJump:
			c.jumps++
		case systems.EventScore:
			c.points++
			c.rallyLengths = append(c.rallyLengths, float64(tick-c.rallyStart))
			c.rallyStart = tick
		case systems.EventGameOver:
			// Counted via the preceding score event
		}
	}

	if tick-c.windowStart < int32(c.windowTicks) {
		return WindowStats{}, false
	}

	mean, std, longest := ComputeRallyStats(c.rallyLengths)
	ws := WindowStats{
		WindowEndTick: tick,
		SimTimeSec:    float64(tick) / float64(c.tickRate),
		LeftScore:     leftScore,
		RightScore:    rightScore,
		Points:        c.points,
		Bounces:       c.bounces,
		Jumps:         c.jumps,
		RallyLenMean:  mean,
		RallyLenStd:   std,
		LongestRally:  longest,
	}

	c.windowStart = tick
	c.bounces = 0
	c.jumps = 0
	c.points = 0
	c.rallyLengths = c.rallyLengths[:0]

	return ws, true
}
