package systems

import (
	"math"

	"github.com/pthm-cable/blobvolley/components"
)

// Pool is a fixed-capacity particle arena. Spawning claims the first
// inactive slot per particle; requests beyond capacity are dropped
// silently. Particles are purely cosmetic and never touch gameplay.
type Pool struct {
	slots []components.Particle
}

// NewPool creates a pool with the given capacity.
func NewPool(capacity int) *Pool {
	return &Pool{slots: make([]components.Particle, capacity)}
}

// Slots exposes the backing array for rendering. Callers must check the
// Active flag per slot.
func (p *Pool) Slots() []components.Particle {
	return p.slots
}

// ActiveCount returns the number of live particles.
func (p *Pool) ActiveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

// SpawnImpact activates count particles at the contact position with a
// randomized upward-and-outward spread.
func (p *Pool) SpawnImpact(pos components.Vec2, count int, rng Rand) {
	for i := 0; i < count; i++ {
		slot := p.claim()
		if slot == nil {
			return // pool exhausted, drop the rest
		}

		// Launch angle in [-120, -60] degrees, speed in [2, 6]
		angle := float64(-120+rng.Intn(61)) * math.Pi / 180
		speed := float32(2 + rng.Intn(5))
		dir := float32(1)
		if rng.Intn(2) == 1 {
			dir = -1
		}

		slot.Pos = pos
		slot.Vel = components.Vec2{
			X: float32(math.Cos(angle)) * speed * dir,
			Y: float32(math.Sin(angle)) * speed,
		}
		slot.Alpha = 1
		slot.Life = 1
		slot.Active = true
	}
}

// claim returns the first inactive slot, or nil when the pool is full.
func (p *Pool) claim() *components.Particle {
	for i := range p.slots {
		if !p.slots[i].Active {
			return &p.slots[i]
		}
	}
	return nil
}

// Update integrates live particles, decays their life and releases slots
// that expire or fall past the ground margin.
func (p *Pool) Update(prm *Params) {
	for i := range p.slots {
		pt := &p.slots[i]
		if !pt.Active {
			continue
		}

		pt.Vel.Y += prm.ParticleGravity
		pt.Pos.X += pt.Vel.X
		pt.Pos.Y += pt.Vel.Y

		pt.Life -= prm.ParticleLifeDecay
		pt.Alpha = pt.Life

		if pt.Life <= 0 || pt.Pos.Y > prm.GroundLevel+prm.ParticleGroundMargin {
			pt.Active = false
		}
	}
}
