package systems

// InputFrame is the logical input sampled once per tick. Movement fields
// are level-triggered (key currently held); the rest are edge-triggered
// (newly pressed this tick). The core never sees devices, only actions.
type InputFrame struct {
	P1Left, P1Right bool
	P1Jump          bool
	P2Left, P2Right bool
	P2Jump          bool

	Pause   bool
	Confirm bool
	Cancel  bool

	MenuUp   bool
	MenuDown bool
}
