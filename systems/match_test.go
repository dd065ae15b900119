package systems

import (
	"testing"

	"github.com/pthm-cable/blobvolley/components"
)

// stubRand returns a fixed value modulo the bound, making AI decisions
// and particle spreads deterministic in tests.
type stubRand struct{ v int }

func (s stubRand) Intn(n int) int { return s.v % n }

func newTestMatch(rng Rand) *Match {
	return NewMatch(DefaultParams(), rng)
}

func almostEq(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-3
}

func TestNewMatchStartsAtMenu(t *testing.T) {
	m := newTestMatch(stubRand{0})

	if m.State != StateMenu {
		t.Fatalf("State = %v, want menu", m.State)
	}
	if m.MenuSelection != MenuSinglePlayer {
		t.Errorf("MenuSelection = %d, want %d", m.MenuSelection, MenuSinglePlayer)
	}

	p := m.Params
	if m.Player1.Pos.X != p.Width/4 || m.Player2.Pos.X != p.Width*3/4 {
		t.Errorf("player positions = %.0f, %.0f, want %.0f, %.0f",
			m.Player1.Pos.X, m.Player2.Pos.X, p.Width/4, p.Width*3/4)
	}
	if m.Player1.Pos.Y != p.GroundLevel-p.PlayerRadius {
		t.Errorf("Player1.Pos.Y = %.0f, want %.0f", m.Player1.Pos.Y, p.GroundLevel-p.PlayerRadius)
	}
	if !m.Player1.OnGround || !m.Player2.OnGround {
		t.Error("players should start grounded")
	}
	if m.Ball.Pos.X != p.Width/4 || m.Ball.Pos.Y != 100 {
		t.Errorf("ball serve position = (%.0f, %.0f), want (%.0f, 100)",
			m.Ball.Pos.X, m.Ball.Pos.Y, p.Width/4)
	}
}

func TestMenuNavigationWraps(t *testing.T) {
	m := newTestMatch(stubRand{0})

	m.Step(InputFrame{MenuUp: true})
	if m.MenuSelection != MenuExit {
		t.Errorf("up from first option: selection = %d, want %d", m.MenuSelection, MenuExit)
	}

	m.Step(InputFrame{MenuDown: true})
	if m.MenuSelection != MenuSinglePlayer {
		t.Errorf("down from last option: selection = %d, want %d", m.MenuSelection, MenuSinglePlayer)
	}

	m.Step(InputFrame{MenuDown: true})
	m.Step(InputFrame{MenuDown: true})
	if m.MenuSelection != MenuCredits {
		t.Errorf("selection = %d, want %d", m.MenuSelection, MenuCredits)
	}
}

func TestMenuConfirmTransitions(t *testing.T) {
	tests := []struct {
		name      string
		selection int
		wantState State
	}{
		{"single player", MenuSinglePlayer, StatePlaying},
		{"two player", MenuTwoPlayer, StatePlaying},
		{"credits", MenuCredits, StateCredits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMatch(stubRand{0})
			m.MenuSelection = tt.selection
			m.Step(InputFrame{Confirm: true})
			if m.State != tt.wantState {
				t.Errorf("State = %v, want %v", m.State, tt.wantState)
			}
		})
	}
}

func TestMenuExitSetsFlag(t *testing.T) {
	m := newTestMatch(stubRand{0})
	m.MenuSelection = MenuExit
	m.Step(InputFrame{Confirm: true})

	if !m.ExitRequested {
		t.Error("ExitRequested should be set")
	}
	if m.State != StateMenu {
		t.Errorf("State = %v, exit should not change state", m.State)
	}
}

func TestStartMatchResetsEverything(t *testing.T) {
	m := newTestMatch(stubRand{0})
	m.StartMatch(ModeTwoPlayer)

	// Dirty the state, then restart.
	m.Player1.Score = 7
	m.Player2.Score = 3
	m.Timer = 9999
	m.ScoreDelay = 60
	m.Serving = components.SideRight
	m.Ball.Pos = components.Vec2{X: 1, Y: 1}
	m.Player1.Pos.X = 400

	m.StartMatch(ModeSinglePlayer)

	p := m.Params
	if m.State != StatePlaying {
		t.Errorf("State = %v, want playing", m.State)
	}
	if m.Mode != ModeSinglePlayer {
		t.Errorf("Mode = %v, want single player", m.Mode)
	}
	if m.Player1.Score != 0 || m.Player2.Score != 0 {
		t.Errorf("scores = %d, %d, want 0, 0", m.Player1.Score, m.Player2.Score)
	}
	if m.Timer != 0 || m.ScoreDelay != 0 {
		t.Errorf("Timer = %d, ScoreDelay = %d, want 0, 0", m.Timer, m.ScoreDelay)
	}
	if m.Serving != components.SideLeft {
		t.Errorf("Serving = %v, want left", m.Serving)
	}
	if m.Player1.Pos.X != p.Width/4 {
		t.Errorf("Player1.Pos.X = %.0f, want %.0f", m.Player1.Pos.X, p.Width/4)
	}
	if m.Ball.Pos.X != p.Width/4 || m.Ball.Pos.Y != 100 {
		t.Errorf("ball = (%.0f, %.0f), want (%.0f, 100)", m.Ball.Pos.X, m.Ball.Pos.Y, p.Width/4)
	}
}

func TestTimerCountsUnpausedPlayingTicks(t *testing.T) {
	m := newTestMatch(stubRand{0})
	m.StartMatch(ModeTwoPlayer)

	for i := 0; i < 120; i++ {
		m.Step(InputFrame{})
	}
	if m.Timer != 120 {
		t.Errorf("Timer = %d, want 120", m.Timer)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	m := newTestMatch(stubRand{0})
	m.StartMatch(ModeTwoPlayer)

	m.Step(InputFrame{Pause: true})
	if !m.Paused {
		t.Fatal("match should be paused")
	}

	ballY := m.Ball.Pos.Y
	timer := m.Timer
	for i := 0; i < 10; i++ {
		m.Step(InputFrame{P1Right: true})
	}
	if m.Ball.Pos.Y != ballY {
		t.Errorf("ball moved while paused: %.2f -> %.2f", ballY, m.Ball.Pos.Y)
	}
	if m.Timer != timer {
		t.Errorf("Timer advanced while paused: %d -> %d", timer, m.Timer)
	}

	// The unpausing tick itself resumes the simulation.
	m.Step(InputFrame{Pause: true})
	if m.Paused {
		t.Fatal("match should be unpaused")
	}
	m.Step(InputFrame{})
	if m.Timer != timer+2 {
		t.Errorf("Timer = %d after unpause, want %d", m.Timer, timer+2)
	}
}

func TestCancelReturnsToMenu(t *testing.T) {
	m := newTestMatch(stubRand{0})
	m.StartMatch(ModeTwoPlayer)

	m.Step(InputFrame{Cancel: true})
	if m.State != StateMenu {
		t.Errorf("State = %v, want menu", m.State)
	}
	if m.MenuSelection != 0 {
		t.Errorf("MenuSelection = %d, want 0", m.MenuSelection)
	}
}

func TestGroundedBallScoresForOppositeSide(t *testing.T) {
	m := newTestMatch(stubRand{0})
	m.StartMatch(ModeTwoPlayer)

	// Dead drop on the left half, away from both blobs.
	m.Ball.Pos = components.Vec2{X: 100, Y: m.Params.GroundLevel - m.Ball.Radius}
	m.Ball.Vel = components.Vec2{}

	m.Step(InputFrame{})

	if m.Player2.Score != 1 {
		t.Errorf("Player2.Score = %d, want 1", m.Player2.Score)
	}
	if m.Player1.Score != 0 {
		t.Errorf("Player1.Score = %d, want 0", m.Player1.Score)
	}
	if m.Serving != components.SideRight {
		t.Errorf("Serving = %v, want right (scorer serves)", m.Serving)
	}
	if m.ScoreDelay != m.Params.ScoreDelayTicks {
		t.Errorf("ScoreDelay = %d, want %d", m.ScoreDelay, m.Params.ScoreDelayTicks)
	}

	var gotScore bool
	for _, ev := range m.DrainEvents() {
		if ev.Type == EventScore && ev.Side == components.SideRight {
			gotScore = true
		}
	}
	if !gotScore {
		t.Error("expected a score event for the right side")
	}
}

func TestScoreDelaySuppressesScoringThenReserves(t *testing.T) {
	m := newTestMatch(stubRand{0})
	m.StartMatch(ModeTwoPlayer)

	m.Ball.Pos = components.Vec2{X: 100, Y: m.Params.GroundLevel - m.Ball.Radius}
	m.Ball.Vel = components.Vec2{}
	m.Step(InputFrame{})

	if m.Player2.Score != 1 {
		t.Fatalf("Player2.Score = %d, want 1", m.Player2.Score)
	}

	// The dead ball keeps bouncing on the ground during the delay but
	// must not score again.
	for i := 0; i < m.Params.ScoreDelayTicks; i++ {
		m.Step(InputFrame{})
	}
	if m.Player2.Score != 1 {
		t.Errorf("Player2.Score = %d after delay, want still 1", m.Player2.Score)
	}
	if m.ScoreDelay != 0 {
		t.Errorf("ScoreDelay = %d, want 0", m.ScoreDelay)
	}

	// Re-serve goes to the scorer's side.
	if m.Ball.Pos.X != m.Params.Width*3/4 {
		t.Errorf("serve X = %.0f, want %.0f", m.Ball.Pos.X, m.Params.Width*3/4)
	}
	if m.Ball.Pos.Y != 100 {
		t.Errorf("serve Y = %.2f, want 100", m.Ball.Pos.Y)
	}
}

func TestWinningPointEndsMatch(t *testing.T) {
	m := newTestMatch(stubRand{0})
	m.StartMatch(ModeTwoPlayer)

	m.Player1.Score = m.Params.WinScore - 1
	m.Ball.Pos = components.Vec2{X: 900, Y: m.Params.GroundLevel - m.Ball.Radius}
	m.Ball.Vel = components.Vec2{}

	m.Step(InputFrame{})

	if m.State != StateGameOver {
		t.Fatalf("State = %v, want gameover", m.State)
	}
	if m.Player1.Score != m.Params.WinScore {
		t.Errorf("Player1.Score = %d, want %d", m.Player1.Score, m.Params.WinScore)
	}
	if m.ScoreDelay != 0 {
		t.Errorf("ScoreDelay = %d, the winning point should not arm a re-serve", m.ScoreDelay)
	}
	if m.Winner() != components.SideLeft {
		t.Errorf("Winner = %v, want left", m.Winner())
	}

	var gotGameOver bool
	for _, ev := range m.DrainEvents() {
		if ev.Type == EventGameOver && ev.Side == components.SideLeft {
			gotGameOver = true
		}
	}
	if !gotGameOver {
		t.Error("expected a game over event for the left side")
	}
}

func TestGameOverConfirmReturnsToMenu(t *testing.T) {
	m := newTestMatch(stubRand{0})
	m.StartMatch(ModeTwoPlayer)
	m.State = StateGameOver
	m.Player1.Score = 10
	m.Player2.Score = 4
	m.Timer = 5000

	m.Step(InputFrame{})
	if m.State != StateGameOver {
		t.Fatal("no input should keep the game over screen")
	}

	m.Step(InputFrame{Confirm: true})
	if m.State != StateMenu {
		t.Errorf("State = %v, want menu", m.State)
	}
	if m.Player1.Score != 0 || m.Player2.Score != 0 || m.Timer != 0 {
		t.Errorf("scores/timer not reset: %d, %d, %d", m.Player1.Score, m.Player2.Score, m.Timer)
	}
}

func TestCreditsScrollAndReturn(t *testing.T) {
	m := newTestMatch(stubRand{0})
	m.MenuSelection = MenuCredits
	m.Step(InputFrame{Confirm: true})

	if m.State != StateCredits {
		t.Fatalf("State = %v, want credits", m.State)
	}
	if m.CreditsScroll != m.Params.Height {
		t.Fatalf("CreditsScroll = %.0f, want %.0f", m.CreditsScroll, m.Params.Height)
	}

	for i := 0; i < 10; i++ {
		m.Step(InputFrame{})
	}
	if want := m.Params.Height - 20; m.CreditsScroll != want {
		t.Errorf("CreditsScroll = %.0f after 10 ticks, want %.0f", m.CreditsScroll, want)
	}

	m.CreditsScroll = CreditsScrollFloor + 1
	m.Step(InputFrame{})
	if m.CreditsScroll != CreditsScrollFloor {
		t.Errorf("CreditsScroll = %.0f, want clamped to %d", m.CreditsScroll, CreditsScrollFloor)
	}

	m.Step(InputFrame{Cancel: true})
	if m.State != StateMenu {
		t.Errorf("State = %v, want menu", m.State)
	}
}

func TestResetBallIsIdempotent(t *testing.T) {
	m := newTestMatch(stubRand{0})
	m.StartMatch(ModeTwoPlayer)

	// Dirty every piece of ball state a rally touches.
	m.Ball.Pos = components.Vec2{X: 640, Y: 222}
	m.Ball.Vel = components.Vec2{X: -7, Y: 9}
	m.Ball.Rotation = 123
	m.Ball.PushTrail()
	m.Ball.PushTrail()

	m.resetBall()
	first := m.Ball
	m.resetBall()

	if m.Ball != first {
		t.Errorf("second reset = %+v, want identical to first %+v", m.Ball, first)
	}
	if first.Vel != (components.Vec2{}) || first.Rotation != 0 || first.TrailCount != 0 {
		t.Errorf("reset ball not clean: %+v", first)
	}
	if first.Pos.X != m.Params.Width/4 || first.Pos.Y != 100 {
		t.Errorf("reset position = (%.0f, %.0f), want (%.0f, 100)",
			first.Pos.X, first.Pos.Y, m.Params.Width/4)
	}
}

func TestEventsAccumulateUntilDrained(t *testing.T) {
	m := newTestMatch(stubRand{0})
	m.StartMatch(ModeTwoPlayer)

	// Three jump-and-land cycles without draining in between.
	for i := 0; i < 3; i++ {
		m.Step(InputFrame{P1Jump: true})
		for steps := 0; !m.Player1.OnGround; steps++ {
			m.Step(InputFrame{})
			if steps > 300 {
				t.Fatal("blob never landed")
			}
		}
	}

	jumps := 0
	for _, ev := range m.events {
		if ev.Type == EventJump {
			jumps++
		}
	}
	if jumps != 3 {
		t.Errorf("queued jump events = %d, want 3 (nothing clears the queue but a drain)", jumps)
	}

	m.DrainEvents()
	if len(m.events) != 0 {
		t.Errorf("queue holds %d events after drain, want 0", len(m.events))
	}
}

func TestDrainEventsClearsQueue(t *testing.T) {
	m := newTestMatch(stubRand{0})
	m.StartMatch(ModeTwoPlayer)

	m.Step(InputFrame{P1Jump: true})
	evs := m.DrainEvents()
	if len(evs) == 0 {
		t.Fatal("expected a jump event")
	}
	if evs[0].Type != EventJump || evs[0].Side != components.SideLeft {
		t.Errorf("event = %+v, want left jump", evs[0])
	}

	if again := m.DrainEvents(); again != nil {
		t.Errorf("second drain returned %d events, want none", len(again))
	}
}
