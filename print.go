package diagsnip

import (
	"os"

	"github.com/surge-lang/diagsnip/source"
)

// Print renders d to os.Stdout.
func Print[ID comparable](d *Diagnostic[ID], cache source.Cache[ID]) error {
	return Write(d, cache, os.Stdout)
}

// Eprint renders d to os.Stderr.
func Eprint[ID comparable](d *Diagnostic[ID], cache source.Cache[ID]) error {
	return Write(d, cache, os.Stderr)
}
