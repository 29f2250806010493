package diagsnip

import "github.com/surge-lang/diagsnip/source"

// Diagnostic is an owned record: kind, optional code and message, ordered
// helps and notes, a primary span used for the header location, an ordered
// list of labels, and its rendering Config.
type Diagnostic[ID comparable] struct {
	Kind    Kind
	Code    *int
	Message string
	Helps   []string
	Notes   []string
	Primary source.Span[ID]
	Labels  []Label[ID]
	Config  Config
}
