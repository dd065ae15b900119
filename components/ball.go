package components

// TrailLength is the capacity of the ball's position trail ring.
const TrailLength = 3

// Ball is the volleyball: a body plus cosmetic trail and spin state.
// Rotation never feeds back into the trajectory.
type Ball struct {
	Body
	Trail      [TrailLength]Vec2
	TrailCount int
	Rotation   float32 // degrees, monotonic accumulator
}

// PushTrail records the current position at the front of the trail ring,
// evicting the oldest sample once the ring is full.
func (b *Ball) PushTrail() {
	for i := TrailLength - 1; i > 0; i-- {
		b.Trail[i] = b.Trail[i-1]
	}
	b.Trail[0] = b.Pos
	if b.TrailCount < TrailLength {
		b.TrailCount++
	}
}

// ClearTrail empties the trail ring.
func (b *Ball) ClearTrail() {
	b.TrailCount = 0
}
