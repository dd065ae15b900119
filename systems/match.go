package systems

import "github.com/pthm-cable/blobvolley/components"

// State is the top-level match state.
type State uint8

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
	StateCredits
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "credits"
	}
}

// Mode selects who controls the right blob.
type Mode uint8

const (
	ModeSinglePlayer Mode = iota
	ModeTwoPlayer
)

// Menu option indices, in display order.
const (
	MenuSinglePlayer = iota
	MenuTwoPlayer
	MenuCredits
	MenuExit
	menuOptionCount
)

// CreditsScrollFloor is where the credits scroll stops.
const CreditsScrollFloor = -800

// Match owns the complete simulation state for one process: both blobs,
// the ball, the particle pool and all state-machine bookkeeping. It is
// driven by Step exactly once per tick and is never touched concurrently.
type Match struct {
	Params Params

	State State
	Mode  Mode

	Player1 components.Player
	Player2 components.Player
	Ball    components.Ball

	Particles *Pool

	Serving    components.Side
	ScoreDelay int // ticks until re-serve; >0 suppresses blob contact and scoring
	Timer      int // ticks spent PLAYING and unpaused this match
	Paused     bool

	MenuSelection int
	CreditsScroll float32
	ExitRequested bool

	aiCooldown int
	frames     int // total ticks stepped, drives trail cadence
	rng        Rand
	events     []Event
}

// NewMatch creates a match at the menu with both blobs in serving position.
func NewMatch(p Params, rng Rand) *Match {
	m := &Match{
		Params:    p,
		State:     StateMenu,
		Serving:   components.SideLeft,
		Particles: NewPool(p.ParticlePoolSize),
		rng:       rng,
	}
	m.placePlayers()
	m.resetBall()
	return m
}

// placePlayers puts both blobs grounded at the center of their halves.
func (m *Match) placePlayers() {
	p := &m.Params
	m.Player1 = components.Player{
		Body: components.Body{
			Pos:    components.Vec2{X: p.Width / 4, Y: p.GroundLevel - p.PlayerRadius},
			Radius: p.PlayerRadius,
		},
		Side:     components.SideLeft,
		OnGround: true,
	}
	m.Player2 = components.Player{
		Body: components.Body{
			Pos:    components.Vec2{X: p.Width * 3 / 4, Y: p.GroundLevel - p.PlayerRadius},
			Radius: p.PlayerRadius,
		},
		Side:     components.SideRight,
		OnGround: true,
	}
}

// resetBall re-seeds the ball above the serving side with zero velocity,
// an empty trail and zero rotation.
func (m *Match) resetBall() {
	p := &m.Params
	x := p.Width / 4
	if m.Serving == components.SideRight {
		x = p.Width * 3 / 4
	}
	m.Ball.Pos = components.Vec2{X: x, Y: 100}
	m.Ball.Vel = components.Vec2{}
	m.Ball.Radius = p.BallRadius
	m.Ball.Rotation = 0
	m.Ball.ClearTrail()
}

// StartMatch resets scores and timers and serves the ball for a new game.
func (m *Match) StartMatch(mode Mode) {
	m.Mode = mode
	m.State = StatePlaying
	m.Paused = false
	m.Player1.Score = 0
	m.Player2.Score = 0
	m.Timer = 0
	m.ScoreDelay = 0
	m.aiCooldown = 0
	m.Serving = components.SideLeft
	m.placePlayers()
	m.resetBall()
}

// Step advances the match by one tick. Input is the frame sampled by the
// caller; all transitions and physics for the tick happen here.
func (m *Match) Step(in InputFrame) {
	m.frames++

	switch m.State {
	case StateMenu:
		m.stepMenu(in)
	case StatePlaying:
		m.stepPlaying(in)
	case StateGameOver:
		m.stepGameOver(in)
	case StateCredits:
		m.stepCredits(in)
	}
}

func (m *Match) stepMenu(in InputFrame) {
	if in.MenuUp {
		m.MenuSelection--
		if m.MenuSelection < 0 {
			m.MenuSelection = menuOptionCount - 1
		}
	}
	if in.MenuDown {
		m.MenuSelection++
		if m.MenuSelection >= menuOptionCount {
			m.MenuSelection = 0
		}
	}

	if !in.Confirm {
		return
	}

	switch m.MenuSelection {
	case MenuSinglePlayer:
		m.StartMatch(ModeSinglePlayer)
	case MenuTwoPlayer:
		m.StartMatch(ModeTwoPlayer)
	case MenuCredits:
		m.State = StateCredits
		m.CreditsScroll = m.Params.Height
	case MenuExit:
		m.ExitRequested = true
	}
}

func (m *Match) stepPlaying(in InputFrame) {
	// Pause and cancel are handled even while frozen.
	if in.Pause {
		m.Paused = !m.Paused
	}
	if in.Cancel {
		m.State = StateMenu
		m.MenuSelection = 0
		return
	}
	if m.Paused {
		return
	}

	m.Timer++

	m.Particles.Update(&m.Params)

	m.controlPlayer(&m.Player1, in.P1Left, in.P1Right, in.P1Jump)
	if m.Mode == ModeTwoPlayer {
		m.controlPlayer(&m.Player2, in.P2Left, in.P2Right, in.P2Jump)
	} else {
		m.stepAI()
	}

	m.integratePlayer(&m.Player1)
	m.integratePlayer(&m.Player2)

	// Re-serve once the score delay expires. The countdown runs before
	// ball physics so the serve tick starts from a clean ball state.
	if m.ScoreDelay > 0 {
		m.ScoreDelay--
		if m.ScoreDelay == 0 {
			m.resetBall()
		}
	}

	m.stepBall()
}

func (m *Match) stepGameOver(in InputFrame) {
	if in.Confirm {
		m.State = StateMenu
		m.MenuSelection = 0
		m.Player1.Score = 0
		m.Player2.Score = 0
		m.Timer = 0
	}
}

func (m *Match) stepCredits(in InputFrame) {
	m.CreditsScroll -= 2
	if m.CreditsScroll < CreditsScrollFloor {
		m.CreditsScroll = CreditsScrollFloor
	}

	if in.Confirm || in.Cancel {
		m.State = StateMenu
		m.MenuSelection = 0
	}
}

// Winner returns the side that reached the win score. Only meaningful in
// StateGameOver.
func (m *Match) Winner() components.Side {
	if m.Player1.Score >= m.Params.WinScore {
		return components.SideLeft
	}
	return components.SideRight
}

// Frames returns the total ticks stepped since creation, across all states.
func (m *Match) Frames() int {
	return m.frames
}
