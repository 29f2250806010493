// Package diagsnip renders compiler-style diagnostics: a kind, optional
// code and message, help/note strings, and a set of labels pointing into
// one or more source texts, turned into a terminal-oriented block with
// colour, box-drawing guides, and connector arrows between spans and their
// messages.
//
// # Purpose
//
// The hard part, and the only part this package's core is organized
// around, is the layout engine in internal/layout: turning a set of
// possibly overlapping, possibly cross-file, possibly multi-line labels
// into a grid of characters.
//
// # Scope
//
// diagsnip does not page output, wrap it to terminal width, emit JSON/LSP
// diagnostics, or perform source-level semantic analysis -- those are left
// to callers. cmd/diagsnip is one such caller.
//
// # Data model
//
// A Label carries a source.Span, an optional message, colour, order and
// priority. A Diagnostic carries a Kind, optional code, message, ordered
// helps and notes, a primary span, and its labels. Labels are built with
// NewLabel and its With* methods; diagnostics through Builder's fluent
// surface.
//
// # Emitting diagnostics
//
// Write renders a Diagnostic against a source.Cache to an io.Writer; Print
// and Eprint are convenience wrappers over os.Stdout/os.Stderr.
package diagsnip
