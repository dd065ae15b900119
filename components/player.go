package components

// Side identifies a court half.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

// String returns the side name for logs.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Player is a blob bound to one court half.
type Player struct {
	Body
	Side     Side
	Score    int
	OnGround bool
}
