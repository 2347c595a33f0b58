// Package config loads game tuning from TOML, layered over built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/blockbreak/component"
)

// ErrInvalid marks configuration values that fail validation
var ErrInvalid = errors.New("invalid config")

// Config is the full set of game parameters
type Config struct {
	Canvas    CanvasConfig    `toml:"canvas"`
	Ball      BallConfig      `toml:"ball"`
	Paddle    PaddleConfig    `toml:"paddle"`
	Enemies   EnemyConfig     `toml:"enemies"`
	Explosion ExplosionConfig `toml:"explosion"`
	Session   SessionConfig   `toml:"session"`
	Frame     FrameConfig     `toml:"frame"`
}

// CanvasConfig is the logical drawing area in pixels
type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// BallConfig sets the ball's size and serve velocity (Speed * Dir)
type BallConfig struct {
	Radius float64 `toml:"radius"`
	Speed  float64 `toml:"speed"`
	DirX   float64 `toml:"dir_x"`
	DirY   float64 `toml:"dir_y"`
	Color  Color   `toml:"color"`
}

// PaddleConfig places the paddle BottomOffset pixels above the canvas bottom
type PaddleConfig struct {
	X            float64 `toml:"x"`
	BottomOffset float64 `toml:"bottom_offset"`
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	MoveSpeed    float64 `toml:"move_speed"`
	DragOffset   float64 `toml:"drag_offset"`
	Color        Color   `toml:"color"`
}

// EnemyConfig lays enemies out row-major, Columns per row
type EnemyConfig struct {
	Count    int     `toml:"count"`
	Columns  int     `toml:"columns"`
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	SpacingX float64 `toml:"spacing_x"`
	SpacingY float64 `toml:"spacing_y"`
	OffsetX  float64 `toml:"offset_x"`
	OffsetY  float64 `toml:"offset_y"`
	Color    Color   `toml:"color"`
}

// ExplosionConfig sets the spawn radius, lifetime in seconds and growth in px/s
type ExplosionConfig struct {
	Radius float64 `toml:"radius"`
	Life   float64 `toml:"life"`
	Growth float64 `toml:"growth"`
	Color  Color   `toml:"color"`
}

// SessionConfig holds per-session rules
type SessionConfig struct {
	Lives int `toml:"lives"`
}

// FrameConfig controls the host frame cadence.
// MaxDelta caps a single step in seconds, 0 leaves dt unclamped
type FrameConfig struct {
	FPS      int     `toml:"fps"`
	MaxDelta float64 `toml:"max_delta"`
}

// Color decodes from TOML color strings such as "#7ef5e1" or "red"
type Color struct {
	component.Color
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := component.ParseColor(string(text))
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Color.String()), nil
}

func mustColor(s string) Color {
	return Color{component.MustParseColor(s)}
}

// Default returns the stock game tuning
func Default() Config {
	return Config{
		Canvas: CanvasConfig{Width: 640, Height: 480},
		Ball: BallConfig{
			Radius: 16,
			Speed:  220,
			DirX:   1,
			DirY:   -1,
			Color:  mustColor("#7ef5e1"),
		},
		Paddle: PaddleConfig{
			X:            80,
			BottomOffset: 100,
			Width:        80,
			Height:       20,
			MoveSpeed:    400,
			DragOffset:   12,
			Color:        mustColor("#b52b60ff"),
		},
		Enemies: EnemyConfig{
			Count:    30,
			Columns:  10,
			Width:    60,
			Height:   20,
			SpacingX: 64,
			SpacingY: 24,
			OffsetX:  2,
			OffsetY:  0,
			Color:    mustColor("red"),
		},
		Explosion: ExplosionConfig{
			Radius: 10,
			Life:   0.3,
			Growth: 60,
			Color:  mustColor("#ffdc50"),
		},
		Session: SessionConfig{Lives: 3},
		Frame:   FrameConfig{FPS: 60, MaxDelta: 0},
	}
}

// Load reads a TOML file over the defaults. An empty path returns the defaults
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults and validates the result
func Parse(data string) (Config, error) {
	cfg := Default()

	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys: %s", ErrInvalid, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section and reports all problems at once
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Canvas.Width > 0, "canvas.width must be positive, got %v", c.Canvas.Width)
	check(c.Canvas.Height > 0, "canvas.height must be positive, got %v", c.Canvas.Height)

	check(c.Ball.Radius > 0, "ball.radius must be positive, got %v", c.Ball.Radius)
	check(c.Ball.Speed >= 0, "ball.speed must not be negative, got %v", c.Ball.Speed)

	check(c.Paddle.Width > 0 && c.Paddle.Width <= c.Canvas.Width,
		"paddle.width must be in (0, canvas.width], got %v", c.Paddle.Width)
	check(c.Paddle.Height > 0, "paddle.height must be positive, got %v", c.Paddle.Height)
	check(c.Paddle.MoveSpeed >= 0, "paddle.move_speed must not be negative, got %v", c.Paddle.MoveSpeed)
	check(c.Paddle.BottomOffset >= 0 && c.Paddle.BottomOffset <= c.Canvas.Height,
		"paddle.bottom_offset must be in [0, canvas.height], got %v", c.Paddle.BottomOffset)

	check(c.Enemies.Count > 0, "enemies.count must be positive, got %d", c.Enemies.Count)
	check(c.Enemies.Columns > 0, "enemies.columns must be positive, got %d", c.Enemies.Columns)
	check(c.Enemies.Width > 0 && c.Enemies.Height > 0,
		"enemies.width and enemies.height must be positive, got %vx%v", c.Enemies.Width, c.Enemies.Height)

	check(c.Explosion.Life > 0, "explosion.life must be positive, got %v", c.Explosion.Life)
	check(c.Explosion.Radius >= 0, "explosion.radius must not be negative, got %v", c.Explosion.Radius)

	check(c.Session.Lives > 0, "session.lives must be positive, got %d", c.Session.Lives)

	check(c.Frame.FPS > 0, "frame.fps must be positive, got %d", c.Frame.FPS)
	check(c.Frame.MaxDelta >= 0, "frame.max_delta must not be negative, got %v", c.Frame.MaxDelta)

	return errors.Join(errs...)
}
