package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/surge-lang/diagsnip"
	"github.com/surge-lang/diagsnip/draw"
)

// applyRenderFlags reads the root command's --color, --char-set, and
// --tab-width flags and layers them onto cfg, the way the teacher's
// subcommands all read from rootCmd's PersistentFlags rather than
// re-declaring their own copies.
func applyRenderFlags(cmd *cobra.Command, cfg diagsnip.Config) (diagsnip.Config, error) {
	colorEnabled, err := resolveColor(cmd)
	if err != nil {
		return cfg, err
	}
	cfg.Color = colorEnabled

	charSet, err := cmd.Flags().GetString("char-set")
	if err != nil {
		return cfg, err
	}
	switch charSet {
	case "unicode":
		cfg.CharSet = diagsnip.Unicode
	case "ascii":
		cfg.CharSet = diagsnip.ASCII
	default:
		return cfg, fmt.Errorf("unsupported --char-set value %q (must be unicode or ascii)", charSet)
	}

	tabWidth, err := cmd.Flags().GetInt("tab-width")
	if err != nil {
		return cfg, err
	}
	cfg.TabWidth = tabWidth

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return cfg, err
	}
	if configPath != "" {
		proj, err := loadProjectConfig(configPath)
		if err != nil {
			return cfg, err
		}
		if !cmd.Flags().Changed("char-set") {
			switch proj.Render.CharSet {
			case "ascii":
				cfg.CharSet = diagsnip.ASCII
			case "unicode":
				cfg.CharSet = diagsnip.Unicode
			}
		}
	}

	return cfg, nil
}

// resolveKindColor returns kind's label colour, overridden by the
// project config's palette when --config points at one -- the way the
// teacher's subcommands defer to surge.toml before falling back to
// built-in defaults.
func resolveKindColor(cmd *cobra.Command, kind diagsnip.Kind) (draw.Color, error) {
	fallback := kind.Color()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fallback, err
	}
	if configPath == "" {
		return fallback, nil
	}
	proj, err := loadProjectConfig(configPath)
	if err != nil {
		return fallback, err
	}

	switch kind {
	case diagsnip.KindError:
		return proj.Render.Palette.errorColor(fallback), nil
	case diagsnip.KindWarning:
		return proj.Render.Palette.warningColor(fallback), nil
	case diagsnip.KindAdvice:
		return proj.Render.Palette.adviceColor(fallback), nil
	default:
		return fallback, nil
	}
}
