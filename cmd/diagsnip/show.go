package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/surge-lang/diagsnip"
	"github.com/surge-lang/diagsnip/source"
)

var (
	showStart   uint32
	showEnd     uint32
	showMessage string
	showLabel   string
	showKind    string
	showCode    int
)

func init() {
	showCmd.Flags().Uint32Var(&showStart, "start", 0, "byte offset of the highlighted span's start")
	showCmd.Flags().Uint32Var(&showEnd, "end", 0, "byte offset of the highlighted span's end")
	showCmd.Flags().StringVar(&showMessage, "message", "", "diagnostic headline message")
	showCmd.Flags().StringVar(&showLabel, "label", "", "message attached to the highlighted span")
	showCmd.Flags().StringVar(&showKind, "kind", "error", "diagnostic kind (error|warning|advice)")
	showCmd.Flags().IntVar(&showCode, "code", 0, "numeric diagnostic code, 0 to omit")
}

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Render one diagnostic over a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		cache := source.NewFileCache()
		if _, err := cache.Fetch(path); err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		kind, err := parseKind(showKind)
		if err != nil {
			return err
		}

		labelColor, err := resolveKindColor(cmd, kind)
		if err != nil {
			return err
		}

		span := source.Span[string]{Source: path, Start: showStart, End: showEnd}
		builder := diagsnip.NewBuilder[string](kind, span).WithMessage(showMessage)
		if showCode != 0 {
			builder = builder.WithCode(showCode)
		}
		label := diagsnip.NewLabel(span).WithColor(labelColor)
		if showLabel != "" {
			label = label.WithMessage(showLabel)
		}
		builder = builder.WithLabel(label)

		d := builder.Build()
		d.Config.IndexType = diagsnip.IndexByte
		cfg, err := applyRenderFlags(cmd, d.Config)
		if err != nil {
			return err
		}
		d.Config = cfg

		return diagsnip.Write(d, cache, os.Stdout)
	},
}

func parseKind(name string) (diagsnip.Kind, error) {
	switch name {
	case "error":
		return diagsnip.KindError, nil
	case "warning":
		return diagsnip.KindWarning, nil
	case "advice":
		return diagsnip.KindAdvice, nil
	default:
		return diagsnip.Kind{}, fmt.Errorf("unsupported --kind value %q (must be error, warning, or advice)", name)
	}
}
