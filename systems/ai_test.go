package systems

import (
	"testing"

	"github.com/pthm-cable/blobvolley/components"
)

// Stub draws: 99 always clears the miss check (99 > missChance), 10
// never does.
const (
	drawAlwaysJump = 99
	drawAlwaysMiss = 10
)

func TestAIDriftsHomeWhenBallIsOutgoing(t *testing.T) {
	m := newTestMatch(stubRand{drawAlwaysJump})
	m.StartMatch(ModeSinglePlayer)
	p := m.Params

	// Ball on the left half moving away from the net.
	m.Ball.Pos = components.Vec2{X: 300, Y: 400}
	m.Ball.Vel = components.Vec2{X: -3, Y: 0}
	m.Player2.Pos.X = 900

	m.Step(InputFrame{})

	want := -p.MoveSpeed * p.AIReturnFactor
	if m.Player2.Vel.X != want {
		t.Errorf("Vel.X = %.2f, want %.2f (drifting home)", m.Player2.Vel.X, want)
	}
	if !m.Player2.OnGround {
		t.Error("AI should not jump at an outgoing ball")
	}
}

func TestAIHoldsPositionInsideTolerance(t *testing.T) {
	m := newTestMatch(stubRand{drawAlwaysJump})
	m.StartMatch(ModeSinglePlayer)
	p := m.Params

	m.Ball.Pos = components.Vec2{X: 300, Y: 400}
	m.Ball.Vel = components.Vec2{X: -3, Y: 0}
	home := p.NetX + (p.Width-p.NetX)/2
	m.Player2.Pos.X = home + p.AIPositionTolerance/2

	m.Step(InputFrame{})

	if m.Player2.Vel.X != 0 {
		t.Errorf("Vel.X = %.2f inside the tolerance band, want 0", m.Player2.Vel.X)
	}
}

func TestAIChasesIncomingBall(t *testing.T) {
	m := newTestMatch(stubRand{drawAlwaysJump})
	m.StartMatch(ModeSinglePlayer)
	p := m.Params

	// High ball on the AI half, out of jumping range.
	m.Ball.Pos = components.Vec2{X: 900, Y: 300}
	m.Ball.Vel = components.Vec2{}

	m.Step(InputFrame{})

	want := p.MoveSpeed * p.AIMoveFactor
	if m.Player2.Vel.X != want {
		t.Errorf("Vel.X = %.2f, want %.2f (chasing)", m.Player2.Vel.X, want)
	}
	if !m.Player2.OnGround {
		t.Error("AI should not jump at a ball far overhead")
	}
}

func TestAIJumpsAtReachableBall(t *testing.T) {
	m := newTestMatch(stubRand{drawAlwaysJump})
	m.StartMatch(ModeSinglePlayer)
	p := m.Params

	// Ball close and slightly above the AI blob.
	m.Ball.Pos = components.Vec2{X: m.Player2.Pos.X - 8, Y: m.Player2.Pos.Y - 28}
	m.Ball.Vel = components.Vec2{}

	m.Step(InputFrame{})

	if m.Player2.OnGround {
		t.Fatal("AI should have jumped")
	}
	if m.aiCooldown != p.AIJumpCooldown {
		t.Errorf("aiCooldown = %d, want %d", m.aiCooldown, p.AIJumpCooldown)
	}

	var gotJump bool
	for _, ev := range m.DrainEvents() {
		if ev.Type == EventJump && ev.Side == components.SideRight {
			gotJump = true
		}
	}
	if !gotJump {
		t.Error("expected a right-side jump event")
	}
}

func TestAIMissChanceSkipsJump(t *testing.T) {
	m := newTestMatch(stubRand{drawAlwaysMiss})
	m.StartMatch(ModeSinglePlayer)

	m.Ball.Pos = components.Vec2{X: m.Player2.Pos.X - 8, Y: m.Player2.Pos.Y - 28}
	m.Ball.Vel = components.Vec2{}

	m.Step(InputFrame{})

	if !m.Player2.OnGround {
		t.Error("AI should have fumbled the jump")
	}
}

func TestAIJumpCooldownBlocksRepeatJumps(t *testing.T) {
	m := newTestMatch(stubRand{drawAlwaysJump})
	m.StartMatch(ModeSinglePlayer)

	m.Ball.Pos = components.Vec2{X: m.Player2.Pos.X - 8, Y: m.Player2.Pos.Y - 28}
	m.Ball.Vel = components.Vec2{}
	m.Step(InputFrame{})
	if m.Player2.OnGround {
		t.Fatal("AI should have jumped")
	}

	// Land, then hold the ball in reach: the cooldown must gate the
	// next jump even though every other condition holds.
	for steps := 0; !m.Player2.OnGround; steps++ {
		m.Ball.Pos = components.Vec2{X: 2, Y: 2} // out of the way
		m.Ball.Vel = components.Vec2{}
		m.Step(InputFrame{})
		if steps > 300 {
			t.Fatal("AI never landed")
		}
	}

	if m.aiCooldown == 0 {
		t.Skip("cooldown already expired during the arc")
	}

	m.Ball.Pos = components.Vec2{X: m.Player2.Pos.X - 8, Y: m.Player2.Pos.Y - 28}
	m.Ball.Vel = components.Vec2{}
	m.Step(InputFrame{})
	if !m.Player2.OnGround {
		t.Error("AI jumped during cooldown")
	}
}
