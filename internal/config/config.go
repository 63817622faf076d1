package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"dungeon-crawler/internal/generate"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is returned by Validate for values no session could run with.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Map     MapConfig     `toml:"map"`
	Rooms   RoomsConfig   `toml:"rooms"`
	Display DisplayConfig `toml:"display"`
	Session SessionConfig `toml:"session"`
	Logging LoggingConfig `toml:"logging"`
}

type MapConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type RoomsConfig struct {
	Count       int `toml:"count"`
	MinSize     int `toml:"min_size"` // inclusive
	MaxSize     int `toml:"max_size"` // exclusive
	Margin      int `toml:"margin"`
	MaxAttempts int `toml:"max_attempts"`
}

// DisplayConfig is the camera window in tiles, not terminal columns.
type DisplayConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type SessionConfig struct {
	Seed     int64         `toml:"seed"`
	TickRate time.Duration `toml:"tick_rate"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty or "stderr" logs to stderr
}

// Load reads a TOML file and overlays it on the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	gen := generate.DefaultConfig()
	return &Config{
		Map: MapConfig{
			Width:  gen.MapWidth,
			Height: gen.MapHeight,
		},
		Rooms: RoomsConfig{
			Count:       gen.NumRooms,
			MinSize:     gen.MinRoomSize,
			MaxSize:     gen.MaxRoomSize,
			Margin:      gen.EdgeMargin,
			MaxAttempts: gen.MaxAttempts,
		},
		Display: DisplayConfig{
			Width:  40,
			Height: 25,
		},
		Session: SessionConfig{
			Seed:     0,
			TickRate: 33 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "dungeon-crawler.log",
		},
	}
}

// Generation converts the map and room sections into builder settings.
func (c *Config) Generation() generate.Config {
	return generate.Config{
		MapWidth:    c.Map.Width,
		MapHeight:   c.Map.Height,
		NumRooms:    c.Rooms.Count,
		MinRoomSize: c.Rooms.MinSize,
		MaxRoomSize: c.Rooms.MaxSize,
		EdgeMargin:  c.Rooms.Margin,
		MaxAttempts: c.Rooms.MaxAttempts,
	}
}

// Validate checks every section. Generation bounds are delegated to the
// builder's own checks.
func (c *Config) Validate() error {
	if err := c.Generation().Validate(); err != nil {
		return err
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("%w: display %dx%d", ErrInvalid, c.Display.Width, c.Display.Height)
	}
	if c.Session.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate %v", ErrInvalid, c.Session.TickRate)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: logging format %q", ErrInvalid, c.Logging.Format)
	}
	return nil
}
