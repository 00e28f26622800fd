package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Config is the harness configuration. It loads from JSON and is then
// overridden by command-line flags.
type Config struct {
	Scenes       []string `json:"scenes"`
	Seed         uint32   `json:"seed"`
	SceneSeconds float64  `json:"scene_seconds"`
	SceneFrames  int      `json:"scene_frames"`
	FixedStep    bool     `json:"fixed_step"`
	Hz           int      `json:"hz"`
	Loop         bool     `json:"loop"`

	CaptureDir  string `json:"capture_dir"`
	ReportPath  string `json:"report_path"`
	TexturePath string `json:"texture_path"`

	NoOverlay bool `json:"no_overlay"`
}

// Defaults applied by Resolve.
const (
	DefaultSceneSeconds = 5.0
	DefaultHz           = 60
)

// LoadConfig reads a JSON config file. Fields not set in the file keep their
// zero values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds command-line values that override config file settings.
type Flags struct {
	Scenes      string
	Seed        uint
	Seconds     float64
	Frames      int
	Fixed       bool
	Hz          int
	Loop        bool
	CaptureDir  string
	ReportPath  string
	TexturePath string
	NoOverlay   bool
}

// Resolve applies flags over the file values and fills in defaults. Flags win
// when non-zero.
func (c *Config) Resolve(f Flags) {
	if f.Scenes != "" {
		c.Scenes = ParseSceneList(f.Scenes)
	}
	if f.Seed != 0 {
		c.Seed = uint32(f.Seed)
	}
	if f.Seconds > 0 {
		c.SceneSeconds = f.Seconds
	}
	if f.Frames > 0 {
		c.SceneFrames = f.Frames
	}
	if f.Hz > 0 {
		c.Hz = f.Hz
	}
	if f.CaptureDir != "" {
		c.CaptureDir = f.CaptureDir
	}
	if f.ReportPath != "" {
		c.ReportPath = f.ReportPath
	}
	if f.TexturePath != "" {
		c.TexturePath = f.TexturePath
	}
	c.FixedStep = c.FixedStep || f.Fixed
	c.Loop = c.Loop || f.Loop
	c.NoOverlay = c.NoOverlay || f.NoOverlay

	if len(c.Scenes) == 0 {
		c.Scenes = SceneNames()
	}
	if c.SceneSeconds <= 0 {
		c.SceneSeconds = DefaultSceneSeconds
	}
	if c.SceneFrames < 0 {
		c.SceneFrames = 0
	}
	if c.Hz <= 0 {
		c.Hz = DefaultHz
	}
}

// Validate reports the first scene name without a registered factory.
func (c *Config) Validate() error {
	if len(c.Scenes) == 0 {
		return fmt.Errorf("config: no scenes")
	}
	for _, name := range c.Scenes {
		if _, ok := registry[name]; !ok {
			return fmt.Errorf("config: %q: %w", name, ErrUnknownScene)
		}
	}
	return nil
}

// ParseSceneList splits a comma separated list, dropping blanks. "all"
// expands to every registered scene.
func ParseSceneList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		switch part {
		case "":
		case "all":
			out = append(out, SceneNames()...)
		default:
			out = append(out, part)
		}
	}
	return out
}
