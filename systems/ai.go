package systems

import "github.com/pthm-cable/blobvolley/components"

// stepAI drives the right blob in single-player mode: chase the ball when
// it is incoming, drift home otherwise, and jump when the ball is in
// reach. An occasional random skip keeps the opponent beatable.
func (m *Match) stepAI() {
	p := &m.Params
	ai := &m.Player2
	ball := &m.Ball

	if m.aiCooldown > 0 {
		m.aiCooldown--
	}

	// Incoming: ball moving rightward on the left half, or already past
	// the net.
	incoming := (ball.Vel.X > 0 && ball.Pos.X < p.NetX) || ball.Pos.X >= p.NetX

	if !incoming {
		// Drift back to the middle of the right half.
		home := p.NetX + (p.Width-p.NetX)/2
		switch {
		case ai.Pos.X < home-p.AIPositionTolerance:
			ai.Vel.X = p.MoveSpeed * p.AIReturnFactor
		case ai.Pos.X > home+p.AIPositionTolerance:
			ai.Vel.X = -p.MoveSpeed * p.AIReturnFactor
		default:
			ai.Vel.X = 0
		}
		return
	}

	dx := ball.Pos.X - ai.Pos.X
	switch {
	case dx < -p.AIPositionTolerance:
		ai.Vel.X = -p.MoveSpeed * p.AIMoveFactor
	case dx > p.AIPositionTolerance:
		ai.Vel.X = p.MoveSpeed * p.AIMoveFactor
	default:
		ai.Vel.X = 0
	}

	// Jump when the ball is horizontally close and vertically within the
	// reachable band, the cooldown has lapsed and the blob is grounded.
	dy := ai.Pos.Y - ball.Pos.Y
	horiz := dx
	if horiz < 0 {
		horiz = -horiz
	}
	shouldJump := horiz < p.AIReactionDistance &&
		dy > -p.AIJumpThreshold &&
		dy < 100 &&
		m.aiCooldown == 0 &&
		ai.OnGround

	if shouldJump && m.rng.Intn(101) > p.AIMissChance {
		ai.Vel.Y = p.JumpForce * p.AIJumpFactor
		ai.OnGround = false
		m.aiCooldown = p.AIJumpCooldown
		m.emit(Event{Type: EventJump, Side: components.SideRight})
	}
}
