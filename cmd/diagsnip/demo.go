package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/surge-lang/diagsnip"
	"github.com/surge-lang/diagsnip/draw"
	"github.com/surge-lang/diagsnip/source"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render a built-in example diagnostic showcasing inline and multiline labels",
	RunE: func(cmd *cobra.Command, args []string) error {
		text := "fn total(items: []int) -> int {\n" +
			"    let sum = 0\n" +
			"    for item in items {\n" +
			"        sum += item\n" +
			"    }\n" +
			"    return sum\n" +
			"}\n"
		const fileName = "demo.sg"
		cache := source.NewSingleSource(fileName, fileName, text)

		gen := draw.NewColorGenerator(1)
		primary := source.Span[string]{Source: fileName, Start: 45, End: 48}
		block := source.Span[string]{Source: fileName, Start: 62, End: 106}

		d := diagsnip.NewBuilder[string](diagsnip.KindWarning, primary).
			WithCode(12).
			WithMessage("`sum` is declared immutable but mutated inside the loop").
			WithLabel(diagsnip.NewLabel(primary).WithMessage("declared here").WithColor(gen.Next())).
			WithLabel(diagsnip.NewLabel(block).WithMessage("mutated in this loop body").WithColor(gen.Next())).
			WithHelp("change `let sum` to `let mut sum`").
			WithNote("immutability is the default for local bindings").
			Build()

		d.Config.IndexType = diagsnip.IndexByte
		cfg, err := applyRenderFlags(cmd, d.Config)
		if err != nil {
			return err
		}
		d.Config = cfg

		return diagsnip.Write(d, cache, os.Stdout)
	},
}
