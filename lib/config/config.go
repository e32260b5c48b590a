package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fosdem/glgame/lib/rendering/shaders"
	yaml "github.com/goccy/go-yaml"
)

//go:embed default.yaml
var defaultYAML []byte

type Config struct {
	Window         *WindowCfg
	Shaders        []*ShaderCfg
	LogLevel       string `yaml:"log_level"`
	StatsIntervalS int    `yaml:"stats_interval_s"`
}

type WindowCfg struct {
	Title        string
	Width        int
	Height       int
	Resizable    bool
	SwapInterval int `yaml:"swap_interval"`
	GL           GLCfg
}

// GLCfg is the context version. The profile is always core.
type GLCfg struct {
	Major int
	Minor int
}

type ShaderCfg struct {
	File string
	Kind string
	Link bool
}

// Default returns the configuration bundled with the binary.
func Default() (*Config, error) {
	cfg, err := Decode(bytes.NewReader(defaultYAML))
	if err != nil {
		return nil, fmt.Errorf("bundled config is broken: %w", err)
	}
	return cfg, nil
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %s", filename, err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			slog.Warn("could not close config", "file", filename, "err", err)
		}
	}(f)

	return Decode(f)
}

func Decode(r io.Reader) (*Config, error) {
	cfg := &Config{}
	err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(cfg)
	if err != nil {
		return nil, err
	}
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window == nil {
		return fmt.Errorf("window section is missing")
	}
	err := c.Window.Validate()
	if err != nil {
		return fmt.Errorf("window is invalid: %w", err)
	}

	if len(c.Shaders) < 1 {
		return fmt.Errorf("at least one shader should be defined")
	}
	seen := make(map[string]bool)
	linked := make(map[shaders.Kind]int)
	for i, s := range c.Shaders {
		err = s.Validate()
		if err != nil {
			return fmt.Errorf("shader %d is invalid: %w", i, err)
		}
		if seen[s.File] {
			return fmt.Errorf("shader %s is listed twice", s.File)
		}
		seen[s.File] = true
		if s.Link {
			kind, _ := shaders.ParseKind(s.Kind)
			linked[kind]++
		}
	}
	for _, kind := range []shaders.Kind{shaders.Vertex, shaders.Fragment} {
		if linked[kind] != 1 {
			return fmt.Errorf("exactly one %s shader must be linked, got %d", kind, linked[kind])
		}
	}

	if _, err := c.Level(); err != nil {
		return err
	}
	if c.StatsIntervalS < 0 {
		return fmt.Errorf("stats_interval_s must be nonnegative")
	}
	return nil
}

// Level is the slog level named by log_level; empty means info.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	err := level.UnmarshalText([]byte(c.LogLevel))
	if err != nil {
		return 0, fmt.Errorf("%s is not a valid log level: %w", c.LogLevel, err)
	}
	return level, nil
}

func (c *Config) StatsInterval() time.Duration {
	return time.Duration(c.StatsIntervalS) * time.Second
}

// Stages converts the shader list into what the shader pipeline consumes.
func (c *Config) Stages() []shaders.Stage {
	stages := make([]shaders.Stage, 0, len(c.Shaders))
	for _, s := range c.Shaders {
		kind, _ := shaders.ParseKind(s.Kind)
		stages = append(stages, shaders.Stage{File: s.File, Kind: kind, Link: s.Link})
	}
	return stages
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Window:\n")
	b.WriteString(fmt.Sprintf("  %s %dx%d (OpenGL %d.%d)\n",
		c.Window.Title, c.Window.Width, c.Window.Height, c.Window.GL.Major, c.Window.GL.Minor))

	b.WriteString("\nShaders:\n")
	for _, s := range c.Shaders {
		linked := ""
		if s.Link {
			linked = ", linked"
		}
		b.WriteString(fmt.Sprintf("  %s (%s%s)\n", s.File, s.Kind, linked))
	}
	return b.String()
}

func (w *WindowCfg) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("size must be positive, got %dx%d", w.Width, w.Height)
	}
	if w.SwapInterval < 0 {
		return fmt.Errorf("swap_interval must be nonnegative")
	}
	return w.GL.Validate()
}

func (g *GLCfg) Validate() error {
	// glCreateVertexArrays needs 4.5
	if g.Major < 4 || (g.Major == 4 && g.Minor < 5) {
		return fmt.Errorf("OpenGL %d.%d is too old, need at least 4.5", g.Major, g.Minor)
	}
	// the shaders are GLSL 4.x, and 4.6 is the last version
	if g.Major > 4 || g.Minor > 6 {
		return fmt.Errorf("OpenGL %d.%d does not exist, use 4.5 or 4.6", g.Major, g.Minor)
	}
	return nil
}

// GLSLVersion is the #version directive body matching the context version.
func (g *GLCfg) GLSLVersion() string {
	return fmt.Sprintf("%d%d0 core", g.Major, g.Minor)
}

func (s *ShaderCfg) Validate() error {
	if s.File == "" {
		return fmt.Errorf("file must be specified")
	}
	if _, err := shaders.ParseKind(s.Kind); err != nil {
		return err
	}
	return nil
}
