// Package config loads the game configuration. Built-in defaults come from
// assets/ships.yaml; an optional user file is decoded on top of them.
package config

import (
	"errors"
	"fmt"
	"os"

	"space-trader/assets"

	"gopkg.in/yaml.v3"
)

// Builder names accepted by MapConfig.Builder.
const (
	BuilderSpace = "space"
	BuilderRoom  = "room"
	BuilderBSP   = "bsp"
	BuilderRand  = "random"
)

// ShipDef describes one ship type.
type ShipDef struct {
	Name     string `yaml:"name"`
	LongName string `yaml:"long_name"`
	Glyph    string `yaml:"glyph"`
	Color    string `yaml:"color"` // any name tcell.GetColor understands

	Fuel        int `yaml:"fuel"`
	Speed       int `yaml:"speed"`
	Storage     int `yaml:"storage"`
	Health      int `yaml:"health"`
	HealthRegen int `yaml:"health_regen"` // 0 disables regeneration
	Armor       int `yaml:"armor"`
	Shields     int `yaml:"shields"`
	ShieldRegen int `yaml:"shield_regen"`
	MeleeSpeed  int `yaml:"melee_speed"`
	MeleeDmg    int `yaml:"melee_dmg"`
	RangedSpeed int `yaml:"ranged_speed"`
	RangedDmg   int `yaml:"ranged_dmg"`
}

// PirateDef is a hostile ship type with its spawn weight.
type PirateDef struct {
	ShipDef `yaml:",inline"`
	Weight  int `yaml:"weight"`
}

type MapConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Builder string `yaml:"builder"`
}

// SalvageConfig bounds what a debris field holds.
type SalvageConfig struct {
	MinFuel  int `yaml:"min_fuel"`
	MaxFuel  int `yaml:"max_fuel"`
	MinCargo int `yaml:"min_cargo"`
	MaxCargo int `yaml:"max_cargo"`
}

type Config struct {
	Map        MapConfig     `yaml:"map"`
	MaxPirates int           `yaml:"max_pirates"`
	LootChance float64       `yaml:"loot_chance"`
	Salvage    SalvageConfig `yaml:"salvage"`
	Player     ShipDef       `yaml:"player"`
	Pirates    []PirateDef   `yaml:"pirates"`
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(assets.DefaultConfig, &cfg); err != nil {
		return nil, fmt.Errorf("decode built-in config: %w", err)
	}
	return &cfg, nil
}

// Load returns the defaults overlaid with the file at path. An empty path
// yields the defaults. The result is validated.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every problem found, joined into one error.
func (c *Config) Validate() error {
	var errs []error
	if c.Map.Width < 10 || c.Map.Height < 10 {
		errs = append(errs, fmt.Errorf("map must be at least 10x10, got %dx%d", c.Map.Width, c.Map.Height))
	}
	switch c.Map.Builder {
	case BuilderSpace, BuilderRoom, BuilderBSP, BuilderRand:
	default:
		errs = append(errs, fmt.Errorf("unknown map builder %q", c.Map.Builder))
	}
	if c.MaxPirates < 1 {
		errs = append(errs, errors.New("max_pirates must be positive"))
	}
	if c.LootChance < 0 || c.LootChance > 1 {
		errs = append(errs, fmt.Errorf("loot_chance %v outside [0,1]", c.LootChance))
	}
	if c.Salvage.MinFuel > c.Salvage.MaxFuel || c.Salvage.MinCargo > c.Salvage.MaxCargo {
		errs = append(errs, errors.New("salvage minimums exceed maximums"))
	}
	if err := c.Player.validate(); err != nil {
		errs = append(errs, fmt.Errorf("player: %w", err))
	}
	if len(c.Pirates) == 0 {
		errs = append(errs, errors.New("at least one pirate type is required"))
	}
	for i, p := range c.Pirates {
		if err := p.validate(); err != nil {
			errs = append(errs, fmt.Errorf("pirates[%d]: %w", i, err))
		}
		if p.Weight < 0 {
			errs = append(errs, fmt.Errorf("pirates[%d]: negative weight", i))
		}
	}
	return errors.Join(errs...)
}

func (d ShipDef) validate() error {
	switch {
	case d.Name == "":
		return errors.New("name is required")
	case len([]rune(d.Glyph)) != 1:
		return fmt.Errorf("%s: glyph must be a single character, got %q", d.Name, d.Glyph)
	case d.Health < 1:
		return fmt.Errorf("%s: health must be positive", d.Name)
	case d.Speed < 1 || d.MeleeSpeed < 1:
		return fmt.Errorf("%s: speeds must be positive", d.Name)
	case d.Armor < 0 || d.MeleeDmg < 0:
		return fmt.Errorf("%s: armor and damage cannot be negative", d.Name)
	}
	return nil
}

// Rune returns the first rune of the definition's glyph.
func (d ShipDef) Rune() rune {
	for _, r := range d.Glyph {
		return r
	}
	return '?'
}
