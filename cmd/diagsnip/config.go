package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/surge-lang/diagsnip/draw"
)

// projectConfig is the shape of a diagsnip.toml project file: palette
// overrides and a default character set, loaded the way the teacher loads
// its own surge.toml project manifest.
type projectConfig struct {
	Render renderConfig `toml:"render"`
}

type renderConfig struct {
	CharSet string      `toml:"char_set"`
	Palette paletteSpec `toml:"palette"`
}

type paletteSpec struct {
	Error   int `toml:"error"`
	Warning int `toml:"warning"`
	Advice  int `toml:"advice"`
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Render.CharSet == "" {
		cfg.Render.CharSet = "unicode"
	}
	_ = meta
	return cfg, nil
}

func (c paletteSpec) errorColor(fallback draw.Color) draw.Color {
	if c.Error == 0 {
		return fallback
	}
	return draw.Color(c.Error)
}

func (c paletteSpec) warningColor(fallback draw.Color) draw.Color {
	if c.Warning == 0 {
		return fallback
	}
	return draw.Color(c.Warning)
}

func (c paletteSpec) adviceColor(fallback draw.Color) draw.Color {
	if c.Advice == 0 {
		return fallback
	}
	return draw.Color(c.Advice)
}
