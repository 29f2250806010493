package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/surge-lang/diagsnip/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "diagsnip",
	Short: "Render compiler-style diagnostics from the command line",
	Long:  `diagsnip renders labelled-span diagnostics over source files with box-drawing gutters, connector arrows, and ANSI colour.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("char-set", "unicode", "box-drawing glyph set (unicode|ascii)")
	rootCmd.PersistentFlags().Int("tab-width", 4, "columns a tab expands to")
	rootCmd.PersistentFlags().String("config", "", "path to a diagsnip.toml project config")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(browseCmd)
}

// resolveColor applies --color's auto|on|off semantics: "auto" checks
// whether stdout is a terminal via golang.org/x/term, the way the teacher's
// isTerminal helper does for its own --color flag.
func resolveColor(cmd *cobra.Command) (bool, error) {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return false, err
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	default:
		return false, fmt.Errorf("unsupported --color value %q (must be auto, on, or off)", mode)
	}
}
