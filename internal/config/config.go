// Package config holds the tunable constants of the penguin simulation.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Texture keys understood by the sprite registry in package assets.
const (
	EnemyTexture      = "penguinFront.png"
	ProjectileTexture = "bubble.png"
	PlayerTexture     = "player.png"
)

// Tunables is every number the enemy systems read.
// Durations and cooldowns are in seconds, distances in pixels, speeds in
// pixels per second.
type Tunables struct {
	DetectionRadius float64 `json:"detection_radius"`
	TrackingSpeed   float64 `json:"tracking_speed"`
	IdleSpeed       float64 `json:"idle_speed"`
	WanderDuration  float64 `json:"wander_duration"`
	IdleDuration    float64 `json:"idle_duration"`

	PopulationCap int     `json:"population_cap"`
	SpawnRadius   float64 `json:"spawn_radius"`
	TileSize      float64 `json:"tile_size"`
	EnemyHP       uint32  `json:"enemy_hp"`

	ProjectileSpeed    float64 `json:"projectile_speed"`
	ProjectileSpread   float64 `json:"projectile_spread"`
	ProjectileMinSpeed float64 `json:"projectile_min_speed"`
	ProjectileDrag     float64 `json:"projectile_drag"` // deceleration as a multiple of launch velocity
	ProjectileLifetime float64 `json:"projectile_lifetime"`
	AttackCooldown     float64 `json:"attack_cooldown"`

	EnemyTexture      string  `json:"enemy_texture"`
	ProjectileTexture string  `json:"projectile_texture"`
	PlayerTexture     string  `json:"player_texture"`
	EnemyFrames       int     `json:"enemy_frames"`
	EnemyFrameTime    float64 `json:"enemy_frame_time"`

	PlayerSpeed   float64 `json:"player_speed"`
	MaxFrameDelta float64 `json:"max_frame_delta"`
}

// Default returns the stock tuning.
func Default() *Tunables {
	return &Tunables{
		DetectionRadius: 180,
		TrackingSpeed:   100,
		IdleSpeed:       50,
		WanderDuration:  2,
		IdleDuration:    2,

		PopulationCap: 5,
		SpawnRadius:   5 * 32,
		TileSize:      32,
		EnemyHP:       120,

		ProjectileSpeed:    736,
		ProjectileSpread:   160,
		ProjectileMinSpeed: 32,
		ProjectileDrag:     2,
		ProjectileLifetime: 3,
		AttackCooldown:     0.5,

		EnemyTexture:      EnemyTexture,
		ProjectileTexture: ProjectileTexture,
		PlayerTexture:     PlayerTexture,
		EnemyFrames:       2,
		EnemyFrameTime:    0.7,

		PlayerSpeed:   140,
		MaxFrameDelta: 0.06,
	}
}

// Validate reports the first value that would make the systems misbehave.
func (t *Tunables) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if !(v >= 0) {
			errs = append(errs, fmt.Errorf("%s must be >= 0, got %v", name, v))
		}
	}
	nonNegative("detection_radius", t.DetectionRadius)
	nonNegative("tracking_speed", t.TrackingSpeed)
	nonNegative("idle_speed", t.IdleSpeed)
	nonNegative("wander_duration", t.WanderDuration)
	nonNegative("idle_duration", t.IdleDuration)
	nonNegative("spawn_radius", t.SpawnRadius)
	positive("tile_size", t.TileSize)
	nonNegative("projectile_speed", t.ProjectileSpeed)
	nonNegative("projectile_spread", t.ProjectileSpread)
	nonNegative("projectile_min_speed", t.ProjectileMinSpeed)
	nonNegative("projectile_drag", t.ProjectileDrag)
	positive("projectile_lifetime", t.ProjectileLifetime)
	nonNegative("attack_cooldown", t.AttackCooldown)
	positive("enemy_frame_time", t.EnemyFrameTime)
	nonNegative("player_speed", t.PlayerSpeed)
	positive("max_frame_delta", t.MaxFrameDelta)
	if t.PopulationCap < 0 {
		errs = append(errs, fmt.Errorf("population_cap must be >= 0, got %d", t.PopulationCap))
	}
	if t.EnemyFrames < 1 {
		errs = append(errs, fmt.Errorf("enemy_frames must be >= 1, got %d", t.EnemyFrames))
	}
	if t.EnemyTexture == "" || t.ProjectileTexture == "" || t.PlayerTexture == "" {
		errs = append(errs, errors.New("texture keys must not be empty"))
	}
	return errors.Join(errs...)
}

// Load reads a JSON file on top of Default. Keys absent from the file keep
// their default value.
func Load(path string) (*Tunables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	t := Default()
	if err := json.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return t, nil
}

// LoadOrDefault returns Default when path is empty, otherwise Load(path).
func LoadOrDefault(path string) (*Tunables, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
