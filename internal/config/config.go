// Package config loads the converter's defaults from a YAML file. Command
// line flags take precedence over anything set here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/kevin-cantwell/macpaint"
)

// Fit modes for pictures that are not 576x720.
const (
	FitNone  = "none"
	FitPad   = "pad"
	FitScale = "scale"
)

type Config struct {
	Dither    string `yaml:"dither"`
	Threshold uint8  `yaml:"threshold"`
	Depth     string `yaml:"depth"`
	Format    string `yaml:"format"`
	Fit       string `yaml:"fit"`
	Tag       bool   `yaml:"tag"`
	MacBinary bool   `yaml:"macbinary"`
	Adjust    Adjust `yaml:"adjust"`
}

// Adjust holds the tone corrections applied before dithering. Zero values
// leave the picture alone, except Gamma where 1 is neutral.
type Adjust struct {
	Gamma      float64 `yaml:"gamma"`
	Brightness float64 `yaml:"brightness"` // -100..100
	Contrast   float64 `yaml:"contrast"`   // -100..100
	Sharpen    float64 `yaml:"sharpen"`    // sigma
	Invert     bool    `yaml:"invert"`

	// Sigmoidal contrast: Factor 0 leaves the picture alone, above 0
	// adds contrast around Midpoint (0..1) and below 0 removes it.
	SigmoidMidpoint float64 `yaml:"sigmoid_midpoint"`
	SigmoidFactor   float64 `yaml:"sigmoid_factor"`
}

func Default() Config {
	return Config{
		Dither:    "atkinson",
		Threshold: 128,
		Depth:     "8",
		Format:    "",
		Fit:       FitNone,
		Tag:       true,
		Adjust:    Adjust{Gamma: 1, SigmoidMidpoint: 0.5},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/macpaint/config.yaml, or the platform's
// equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "macpaint", "config.yaml")
}

// Load reads path over Default(). An empty path means DefaultPath, which
// may be absent; a file named explicitly must exist.
func Load(path string) (Config, error) {
	c := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return c, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config: %s: %v", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Validate reports the first setting the converter cannot honour.
func (c Config) Validate() error {
	if _, err := macpaint.DithererByName(c.Dither); err != nil {
		return err
	}
	if _, err := macpaint.ParseDepth(c.Depth); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case "", "png", "bmp", "tiff":
	default:
		return fmt.Errorf("unsupported output format %q (want png, bmp or tiff)", c.Format)
	}
	switch c.Fit {
	case FitNone, FitPad, FitScale:
	default:
		return fmt.Errorf("unknown fit %q (want %s, %s or %s)", c.Fit, FitNone, FitPad, FitScale)
	}
	a := c.Adjust
	if a.Gamma <= 0 {
		return fmt.Errorf("gamma must be positive, got %g", a.Gamma)
	}
	if a.Brightness < -100 || a.Brightness > 100 {
		return fmt.Errorf("brightness %g out of range -100..100", a.Brightness)
	}
	if a.Contrast < -100 || a.Contrast > 100 {
		return fmt.Errorf("contrast %g out of range -100..100", a.Contrast)
	}
	if a.SigmoidMidpoint < 0 || a.SigmoidMidpoint > 1 {
		return fmt.Errorf("sigmoid midpoint %g out of range 0..1", a.SigmoidMidpoint)
	}
	if a.Sharpen < 0 {
		return fmt.Errorf("sharpen must not be negative, got %g", a.Sharpen)
	}
	return nil
}
