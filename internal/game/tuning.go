package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnemyStats is the per-class stat table consulted by the spawn director.
type EnemyStats struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BaseHP        int     `yaml:"base_hp"`
	HPPerLevel    int     `yaml:"hp_per_level"`
	BaseSpeed     float64 `yaml:"base_speed"`
	SpeedPerLevel float64 `yaml:"speed_per_level"`
	WeaveAmp      float64 `yaml:"weave_amp"`
	WeaveFreq     float64 `yaml:"weave_freq"`
	Shoots        bool    `yaml:"shoots"`
	ShootEvery    float64 `yaml:"shoot_every"`
	Points        int     `yaml:"points"`
}

// Tuning holds every gameplay constant. Values are data, not behavior: the
// defaults define the reference game, and a YAML file can override any of
// them for balancing without a rebuild.
type Tuning struct {
	PlayerWidth   float64 `yaml:"player_width"`
	PlayerHeight  float64 `yaml:"player_height"`
	PlayerSpeed   float64 `yaml:"player_speed"`
	Lives         int     `yaml:"lives"`
	Invincibility float64 `yaml:"invincibility"`

	FireCooldown float64 `yaml:"fire_cooldown"`
	SpreadLevel  int     `yaml:"spread_level"` // Level at which side bullets unlock
	SpreadAngle  float64 `yaml:"spread_angle"` // Radians off vertical
	BulletSpeed  float64 `yaml:"bullet_speed"`
	BulletRadius float64 `yaml:"bullet_radius"`
	BulletDamage int     `yaml:"bullet_damage"`

	EnemyBulletRadius        float64 `yaml:"enemy_bullet_radius"`
	EnemyBulletBaseSpeed     float64 `yaml:"enemy_bullet_base_speed"`
	EnemyBulletSpeedPerLevel float64 `yaml:"enemy_bullet_speed_per_level"`

	SpawnInterval       float64 `yaml:"spawn_interval"`
	SpawnIntervalFloor  float64 `yaml:"spawn_interval_floor"`
	SpawnShrinkPerLevel float64 `yaml:"spawn_shrink_per_level"`
	TankWeightBase      float64 `yaml:"tank_weight_base"`
	TankWeightPerLevel  float64 `yaml:"tank_weight_per_level"`
	DartWeight          float64 `yaml:"dart_weight"`

	KillsPerLevel int `yaml:"kills_per_level"`
	StarCount     int `yaml:"star_count"`

	Grunt EnemyStats `yaml:"grunt"`
	Dart  EnemyStats `yaml:"dart"`
	Tank  EnemyStats `yaml:"tank"`
}

// DefaultTuning returns the reference game balance.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerWidth:   40,
		PlayerHeight:  30,
		PlayerSpeed:   280,
		Lives:         3,
		Invincibility: 2.5,

		FireCooldown: 0.18,
		SpreadLevel:  3,
		SpreadAngle:  0.26,
		BulletSpeed:  520,
		BulletRadius: 3,
		BulletDamage: 1,

		EnemyBulletRadius:        4,
		EnemyBulletBaseSpeed:     160,
		EnemyBulletSpeedPerLevel: 10,

		SpawnInterval:       2.0,
		SpawnIntervalFloor:  0.5,
		SpawnShrinkPerLevel: 0.05,
		TankWeightBase:      0.15,
		TankWeightPerLevel:  0.05,
		DartWeight:          0.3,

		KillsPerLevel: 12,
		StarCount:     180,

		Grunt: EnemyStats{
			Width: 34, Height: 26,
			BaseHP: 2, HPPerLevel: 1,
			BaseSpeed: 60, SpeedPerLevel: 8,
			WeaveAmp: 30, WeaveFreq: 1.5,
			Shoots: true, ShootEvery: 2.4,
			Points: 10,
		},
		Dart: EnemyStats{
			Width: 26, Height: 22,
			BaseHP: 1, HPPerLevel: 0,
			BaseSpeed: 140, SpeedPerLevel: 12,
			WeaveAmp: 70, WeaveFreq: 3.0,
			Shoots: false,
			Points: 15,
		},
		Tank: EnemyStats{
			Width: 52, Height: 40,
			BaseHP: 6, HPPerLevel: 2,
			BaseSpeed: 35, SpeedPerLevel: 5,
			WeaveAmp: 15, WeaveFreq: 0.8,
			Shoots: true, ShootEvery: 3.2,
			Points: 40,
		},
	}
}

// LoadTuning reads YAML overrides from path on top of the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse tuning file %s: %w", path, err)
	}
	return t, nil
}
