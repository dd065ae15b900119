// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Court     CourtConfig     `yaml:"court"`
	Player    PlayerConfig    `yaml:"player"`
	Ball      BallConfig      `yaml:"ball"`
	Rules     RulesConfig     `yaml:"rules"`
	AI        AIConfig        `yaml:"ai"`
	Particles ParticlesConfig `yaml:"particles"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// CourtConfig holds court geometry.
type CourtConfig struct {
	GroundOffset int     `yaml:"ground_offset"` // Ground level = screen height - offset
	NetHeight    float64 `yaml:"net_height"`
	NetWidth     float64 `yaml:"net_width"`
}

// PlayerConfig holds blob movement parameters.
type PlayerConfig struct {
	Radius       float64 `yaml:"radius"`
	Gravity      float64 `yaml:"gravity"`
	MoveSpeed    float64 `yaml:"move_speed"`
	JumpForce    float64 `yaml:"jump_force"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// BallConfig holds ball physics parameters.
type BallConfig struct {
	Radius         float64 `yaml:"radius"`
	Gravity        float64 `yaml:"gravity"`
	MaxSpeed       float64 `yaml:"max_speed"`
	SpinFactor     float64 `yaml:"spin_factor"`
	TrailInterval  int     `yaml:"trail_interval"`
	Restitution    float64 `yaml:"restitution"`
	TransferX      float64 `yaml:"transfer_x"`
	TransferY      float64 `yaml:"transfer_y"`
	SpikeThreshold float64 `yaml:"spike_threshold"`
	SpikeBoost     float64 `yaml:"spike_boost"`
	NetDamping     float64 `yaml:"net_damping"`
}

// RulesConfig holds match rules.
type RulesConfig struct {
	WinScore        int `yaml:"win_score"`
	ScoreDelayTicks int `yaml:"score_delay_ticks"`
}

// AIConfig holds the computer opponent's decision parameters.
type AIConfig struct {
	ReactionDistance  float64 `yaml:"reaction_distance"`
	JumpThreshold     float64 `yaml:"jump_threshold"`
	PositionTolerance float64 `yaml:"position_tolerance"`
	JumpCooldown      int     `yaml:"jump_cooldown"`
	MissChance        int     `yaml:"miss_chance"` // Percent chance to skip a valid jump
	MoveFactor        float64 `yaml:"move_factor"`
	ReturnFactor      float64 `yaml:"return_factor"`
	JumpFactor        float64 `yaml:"jump_factor"`
}

// ParticlesConfig holds impact particle parameters.
type ParticlesConfig struct {
	PoolSize     int     `yaml:"pool_size"`
	ImpactCount  int     `yaml:"impact_count"`
	Gravity      float64 `yaml:"gravity"`
	LifeDecay    float64 `yaml:"life_decay"`
	GroundMargin float64 `yaml:"ground_margin"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds per stats window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	GroundLevel float32 // Screen height minus the court ground offset
	NetX        float32 // Horizontal center of the court
	ScreenW32   float32 // Screen.Width as float32
	ScreenH32   float32 // Screen.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.GroundLevel = float32(c.Screen.Height - c.Court.GroundOffset)
	c.Derived.NetX = float32(c.Screen.Width) / 2
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
