package gameforge

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/gameforge/easing"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds tick rate, debug mode and named motion presets.
type Config struct {
	TPS     int                     `yaml:"tps"`
	Debug   bool                    `yaml:"debug"`
	Motions map[string]MotionConfig `yaml:"motions"`
}

// MotionConfig describes a TransformProcess.
type MotionConfig struct {
	From       TransformConfig `yaml:"from"`
	To         TransformConfig `yaml:"to"`
	DurationMS float64         `yaml:"duration_ms"`
	Easing     string          `yaml:"easing"`
}

// TransformConfig is the YAML form of a Transform2. A missing scale means 1.
type TransformConfig struct {
	X           float64  `yaml:"x"`
	Y           float64  `yaml:"y"`
	RotationDeg float64  `yaml:"rotation_deg"`
	ScaleX      *float64 `yaml:"scale_x"`
	ScaleY      *float64 `yaml:"scale_y"`
}

// DefaultConfig returns the embedded defaults.
func DefaultConfig() *Config {
	cfg, err := ParseConfig(nil)
	if err != nil {
		panic(fmt.Sprintf("gameforge: embedded defaults: %v", err))
	}
	return cfg
}

// ParseConfig parses YAML on top of the embedded defaults. Motions in data
// are added to the default motions, replacing any with the same name.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return nil, fmt.Errorf("parse defaults: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	for name, m := range c.Motions {
		if m.DurationMS < 0 {
			return fmt.Errorf("motion %q: negative duration %v", name, m.DurationMS)
		}
		if _, err := easing.ByName(m.Easing); err != nil {
			return fmt.Errorf("motion %q: %w", name, err)
		}
	}
	return nil
}

// Apply sets Ebitengine's tick rate and the global debug flag.
func (c *Config) Apply() {
	ebiten.SetTPS(c.TPS)
	SetDebug(c.Debug)
}

// Motion builds a fresh process for the named motion.
func (c *Config) Motion(name string) (*TransformProcess, error) {
	m, ok := c.Motions[name]
	if !ok {
		return nil, fmt.Errorf("gameforge: unknown motion %q", name)
	}
	return m.Process()
}

// Process builds a TransformProcess from m.
func (m MotionConfig) Process() (*TransformProcess, error) {
	fn, err := easing.ByName(m.Easing)
	if err != nil {
		return nil, err
	}
	return NewTransformProcess(m.From.Transform(), m.To.Transform(), Time(m.DurationMS)*Millisecond, fn), nil
}

// Transform converts t to a Transform2.
func (t TransformConfig) Transform() Transform2 {
	tr := NewTransform(V2(t.X, t.Y), Degrees(t.RotationDeg))
	if t.ScaleX != nil {
		tr.Scale.X = *t.ScaleX
	}
	if t.ScaleY != nil {
		tr.Scale.Y = *t.ScaleY
	}
	return tr
}
