// Command diagsnip is a small CLI wrapped around the diagsnip library: it
// renders a single labelled diagnostic against a file, prints a built-in
// demo, warms a disk cache of parsed sources for a list of files, and lets
// the user browse a batch of diagnostics interactively before rendering
// one in full.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
