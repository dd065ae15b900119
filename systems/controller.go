package systems

import "github.com/pthm-cable/blobvolley/components"

// controlPlayer translates held movement input into horizontal velocity
// and a jump press into vertical velocity. Velocity is applied by
// integratePlayer; the controller never moves the blob itself.
func (m *Match) controlPlayer(pl *components.Player, left, right, jump bool) {
	switch {
	case left:
		pl.Vel.X = -m.Params.MoveSpeed
	case right:
		pl.Vel.X = m.Params.MoveSpeed
	default:
		pl.Vel.X = 0
	}

	if jump && pl.OnGround {
		pl.Vel.Y = m.Params.JumpForce
		pl.OnGround = false
		m.emit(Event{Type: EventJump, Side: pl.Side})
	}
}

// integratePlayer applies velocity and gravity, clamps fall speed, keeps
// the blob inside its court half and resolves ground contact.
func (m *Match) integratePlayer(pl *components.Player) {
	p := &m.Params

	pl.Pos.X += pl.Vel.X
	pl.Pos.Y += pl.Vel.Y

	pl.Vel.Y += p.PlayerGravity
	if pl.Vel.Y > p.MaxFallSpeed {
		pl.Vel.Y = p.MaxFallSpeed
	}

	m.clampToSide(pl)

	if pl.Pos.Y+pl.Radius >= p.GroundLevel {
		pl.Pos.Y = p.GroundLevel - pl.Radius
		pl.Vel.Y = 0
		pl.OnGround = true
	} else {
		pl.OnGround = false
	}
}

// clampToSide pins the blob's x between the court edge and the net post.
func (m *Match) clampToSide(pl *components.Player) {
	p := &m.Params
	if pl.Side == components.SideLeft {
		if pl.Pos.X-pl.Radius < 0 {
			pl.Pos.X = pl.Radius
		}
		if pl.Pos.X+pl.Radius > p.NetX-p.NetWidth/2 {
			pl.Pos.X = p.NetX - p.NetWidth/2 - pl.Radius
		}
	} else {
		if pl.Pos.X-pl.Radius < p.NetX+p.NetWidth/2 {
			pl.Pos.X = p.NetX + p.NetWidth/2 + pl.Radius
		}
		if pl.Pos.X+pl.Radius > p.Width {
			pl.Pos.X = p.Width - pl.Radius
		}
	}
}
