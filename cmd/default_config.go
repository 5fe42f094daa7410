package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim"
)

// defaultDefaultsPath is used when neither --defaults nor PAGESIM_DEFAULTS is set.
const defaultDefaultsPath = "defaults.yaml"

// Preset is a named reference string in defaults.yaml.
type Preset struct {
	Pages       string `yaml:"pages"`
	Frames      int    `yaml:"frames,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version       string            `yaml:"version"`
	DefaultFrames int               `yaml:"default_frames"`
	Presets       map[string]Preset `yaml:"presets"`
}

// loadDefaultsConfig parses defaults.yaml into a Config struct.
// Uses strict field checking. A missing file at the built-in default path
// yields an empty Config; a missing file the user asked for is an error.
func loadDefaultsConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == defaultDefaultsPath {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading defaults file %s: %w", path, err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing defaults file %s: %w", path, err)
	}
	if cfg.DefaultFrames < 0 {
		return nil, fmt.Errorf("defaults file %s: default_frames must be non-negative, got %d", path, cfg.DefaultFrames)
	}
	return &cfg, nil
}

// PresetNames returns the preset names in sorted order.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolveInput picks the reference string and frame count for a command.
// Exactly one of refs and preset must be given. Frames come from, in order:
// an explicit --frames (or PAGESIM_FRAMES), the preset, default_frames, the flag default.
func resolveInput(cmd *cobra.Command, refs, preset string, flagFrames int) ([]int, int, error) {
	if (refs == "") == (preset == "") {
		return nil, 0, fmt.Errorf("exactly one of --refs or --preset is required")
	}
	nFrames := flagFrames
	framesChanged := cmd.Flags().Changed("frames")

	if refs != "" {
		parsed, err := sim.ParseReferenceString(refs)
		if err != nil {
			return nil, 0, err
		}
		if !framesChanged {
			cfg, err := loadDefaultsConfig(defaultsPath)
			if err != nil {
				return nil, 0, err
			}
			if cfg.DefaultFrames > 0 {
				nFrames = cfg.DefaultFrames
			}
		}
		return parsed, nFrames, nil
	}

	cfg, err := loadDefaultsConfig(defaultsPath)
	if err != nil {
		return nil, 0, err
	}
	p, ok := cfg.Presets[preset]
	if !ok {
		return nil, 0, fmt.Errorf("unknown preset %q; available: %v", preset, cfg.PresetNames())
	}
	parsed, err := sim.ParseReferenceString(p.Pages)
	if err != nil {
		return nil, 0, fmt.Errorf("preset %q: %w", preset, err)
	}
	if !framesChanged {
		switch {
		case p.Frames > 0:
			nFrames = p.Frames
		case cfg.DefaultFrames > 0:
			nFrames = cfg.DefaultFrames
		}
	}
	return parsed, nFrames, nil
}
