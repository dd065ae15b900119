package systems

import "github.com/pthm-cable/blobvolley/components"

// stepBall runs the ball's tick: integration, spin, trail sampling and
// the collision sequence. The order (walls, ceiling, net, blobs, ground)
// matters: each response mutates the state consumed by the next check.
func (m *Match) stepBall() {
	p := &m.Params
	ball := &m.Ball

	ball.Pos.X += ball.Vel.X
	ball.Pos.Y += ball.Vel.Y
	ball.Vel.Y += p.BallGravity

	// Spin follows horizontal speed only; cosmetic, never fed back.
	spin := ball.Vel.X
	if spin < 0 {
		spin = -spin
	}
	ball.Rotation += (spin / ball.Radius) * p.SpinFactor

	if m.frames%p.TrailInterval == 0 {
		ball.PushTrail()
	}

	// Side walls
	if ball.Pos.X-ball.Radius <= 0 {
		ball.Pos.X = ball.Radius
		ball.Vel.X = -ball.Vel.X
	}
	if ball.Pos.X+ball.Radius >= p.Width {
		ball.Pos.X = p.Width - ball.Radius
		ball.Vel.X = -ball.Vel.X
	}

	// Ceiling
	if ball.Pos.Y-ball.Radius <= 0 {
		ball.Pos.Y = ball.Radius
		ball.Vel.Y = -ball.Vel.Y
	}

	m.collideNet()

	// Blob contact is suppressed during the score delay so a dead ball
	// cannot be batted back into play.
	if m.ScoreDelay == 0 {
		m.collidePlayer(&m.Player1)
		m.collidePlayer(&m.Player2)
	}

	m.collideGround()
}

// collideNet bounces the ball off the net post, damping the vertical
// component and pushing the ball clear on the side it came from.
func (m *Match) collideNet() {
	p := &m.Params
	ball := &m.Ball
	net := p.NetRect()

	if !CircleIntersectsRect(ball.Pos, ball.Radius, net) {
		return
	}

	ball.Vel.X = -ball.Vel.X
	ball.Vel.Y *= p.NetDamping

	if ball.Pos.X < p.NetX {
		ball.Pos.X = net.X - ball.Radius
	} else {
		ball.Pos.X = net.X + net.W + ball.Radius
	}

	m.emit(Event{Type: EventBounce, Pos: ball.Pos})
}

// collidePlayer reflects the ball off a blob, transfers part of the
// blob's momentum, applies the spike boost on jumping contact and seats
// the ball at the contact distance so the overlap cannot re-trigger.
func (m *Match) collidePlayer(pl *components.Player) {
	p := &m.Params
	ball := &m.Ball

	if !CirclesIntersect(ball.Pos, ball.Radius, pl.Pos, pl.Radius) {
		return
	}

	normal := ball.Pos.Sub(pl.Pos)
	if l := normal.Length(); l > 0 {
		normal = normal.Scale(1 / l)
	}

	ball.Vel = Reflect(ball.Vel, normal).Scale(p.Restitution)

	ball.Vel.X += pl.Vel.X * p.TransferX
	ball.Vel.Y += pl.Vel.Y * p.TransferY

	// Spike: a blob moving sharply upward drives the ball down harder.
	if pl.Vel.Y < p.SpikeThreshold {
		ball.Vel.Y -= p.SpikeBoost
	}

	ball.Vel = ClampSpeed(ball.Vel, p.BallMaxSpeed)

	ball.Pos = pl.Pos.Add(normal.Scale(pl.Radius + ball.Radius))

	m.emit(Event{Type: EventBounce, Pos: ball.Pos})
}

// collideGround bounces the ball, spawns impact particles and, outside
// the score delay, resolves the point. Scoring, the win check and the
// delay arming happen atomically within this tick.
func (m *Match) collideGround() {
	p := &m.Params
	ball := &m.Ball

	if ball.Pos.Y+ball.Radius < p.GroundLevel {
		return
	}

	ball.Pos.Y = p.GroundLevel - ball.Radius
	ball.Vel.Y = -ball.Vel.Y

	impact := components.Vec2{X: ball.Pos.X, Y: p.GroundLevel}
	m.Particles.SpawnImpact(impact, p.ImpactParticleCount, m.rng)

	if m.ScoreDelay > 0 {
		return
	}

	// The landing half decides the point: the opposite blob scores and
	// takes the serve.
	var scorer *components.Player
	if ball.Pos.X < p.NetX {
		scorer = &m.Player2
	} else {
		scorer = &m.Player1
	}
	scorer.Score++
	m.Serving = scorer.Side
	m.emit(Event{Type: EventScore, Side: scorer.Side, Pos: impact})

	if scorer.Score >= p.WinScore {
		m.State = StateGameOver
		m.emit(Event{Type: EventGameOver, Side: scorer.Side})
		return
	}

	m.ScoreDelay = p.ScoreDelayTicks
}
