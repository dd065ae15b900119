// Package systems implements the match core: collision resolution, blob
// control, ball physics, the particle pool and the match state machine.
// It has no rendering, audio or input dependencies; the game package feeds
// it input frames and consumes its events and state.
package systems

import (
	"github.com/pthm-cable/blobvolley/components"
	"github.com/pthm-cable/blobvolley/config"
)

// Rand supplies bounded integer draws. *math/rand.Rand satisfies it;
// tests substitute fixed sources.
type Rand interface {
	Intn(n int) int
}

// Params holds every tuning constant the core consumes. Values are fixed
// for the lifetime of a Match.
type Params struct {
	// Court geometry
	Width       float32
	Height      float32
	GroundLevel float32
	NetX        float32
	NetWidth    float32
	NetHeight   float32

	// Blob movement
	PlayerRadius  float32
	PlayerGravity float32
	MoveSpeed     float32
	JumpForce     float32
	MaxFallSpeed  float32

	// Ball physics
	BallRadius     float32
	BallGravity    float32
	BallMaxSpeed   float32
	SpinFactor     float32
	TrailInterval  int
	Restitution    float32
	TransferX      float32
	TransferY      float32
	SpikeThreshold float32
	SpikeBoost     float32
	NetDamping     float32

	// Rules
	WinScore        int
	ScoreDelayTicks int

	// AI
	AIReactionDistance  float32
	AIJumpThreshold     float32
	AIPositionTolerance float32
	AIJumpCooldown      int
	AIMissChance        int
	AIMoveFactor        float32
	AIReturnFactor      float32
	AIJumpFactor        float32

	// Particles
	ParticlePoolSize     int
	ImpactParticleCount  int
	ParticleGravity      float32
	ParticleLifeDecay    float32
	ParticleGroundMargin float32
}

// DefaultParams returns the stock tuning, mirroring config/defaults.yaml.
func DefaultParams() Params {
	return Params{
		Width:       1024,
		Height:      768,
		GroundLevel: 768 - 50,
		NetX:        512,
		NetWidth:    10,
		NetHeight:   140,

		PlayerRadius:  50,
		PlayerGravity: 0.8,
		MoveSpeed:     4,
		JumpForce:     -12,
		MaxFallSpeed:  15,

		BallRadius:     35,
		BallGravity:    0.4,
		BallMaxSpeed:   15,
		SpinFactor:     35,
		TrailInterval:  2,
		Restitution:    0.95,
		TransferX:      0.7,
		TransferY:      0.5,
		SpikeThreshold: -5,
		SpikeBoost:     3,
		NetDamping:     0.9,

		WinScore:        10,
		ScoreDelayTicks: 120,

		AIReactionDistance:  150,
		AIJumpThreshold:     60,
		AIPositionTolerance: 20,
		AIJumpCooldown:      30,
		AIMissChance:        20,
		AIMoveFactor:        0.8,
		AIReturnFactor:      0.6,
		AIJumpFactor:        0.9,

		ParticlePoolSize:     100,
		ImpactParticleCount:  15,
		ParticleGravity:      0.3,
		ParticleLifeDecay:    0.02,
		ParticleGroundMargin: 20,
	}
}

// ParamsFromConfig builds core params from the loaded configuration.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		Width:       cfg.Derived.ScreenW32,
		Height:      cfg.Derived.ScreenH32,
		GroundLevel: cfg.Derived.GroundLevel,
		NetX:        cfg.Derived.NetX,
		NetWidth:    float32(cfg.Court.NetWidth),
		NetHeight:   float32(cfg.Court.NetHeight),

		PlayerRadius:  float32(cfg.Player.Radius),
		PlayerGravity: float32(cfg.Player.Gravity),
		MoveSpeed:     float32(cfg.Player.MoveSpeed),
		JumpForce:     float32(cfg.Player.JumpForce),
		MaxFallSpeed:  float32(cfg.Player.MaxFallSpeed),

		BallRadius:     float32(cfg.Ball.Radius),
		BallGravity:    float32(cfg.Ball.Gravity),
		BallMaxSpeed:   float32(cfg.Ball.MaxSpeed),
		SpinFactor:     float32(cfg.Ball.SpinFactor),
		TrailInterval:  cfg.Ball.TrailInterval,
		Restitution:    float32(cfg.Ball.Restitution),
		TransferX:      float32(cfg.Ball.TransferX),
		TransferY:      float32(cfg.Ball.TransferY),
		SpikeThreshold: float32(cfg.Ball.SpikeThreshold),
		SpikeBoost:     float32(cfg.Ball.SpikeBoost),
		NetDamping:     float32(cfg.Ball.NetDamping),

		WinScore:        cfg.Rules.WinScore,
		ScoreDelayTicks: cfg.Rules.ScoreDelayTicks,

		AIReactionDistance:  float32(cfg.AI.ReactionDistance),
		AIJumpThreshold:     float32(cfg.AI.JumpThreshold),
		AIPositionTolerance: float32(cfg.AI.PositionTolerance),
		AIJumpCooldown:      cfg.AI.JumpCooldown,
		AIMissChance:        cfg.AI.MissChance,
		AIMoveFactor:        float32(cfg.AI.MoveFactor),
		AIReturnFactor:      float32(cfg.AI.ReturnFactor),
		AIJumpFactor:        float32(cfg.AI.JumpFactor),

		ParticlePoolSize:     cfg.Particles.PoolSize,
		ImpactParticleCount:  cfg.Particles.ImpactCount,
		ParticleGravity:      float32(cfg.Particles.Gravity),
		ParticleLifeDecay:    float32(cfg.Particles.LifeDecay),
		ParticleGroundMargin: float32(cfg.Particles.GroundMargin),
	}
}

// NetRect returns the net collision rectangle, anchored to the ground.
func (p *Params) NetRect() components.Rect {
	return components.Rect{
		X: p.NetX - p.NetWidth/2,
		Y: p.GroundLevel - p.NetHeight,
		W: p.NetWidth,
		H: p.NetHeight,
	}
}
