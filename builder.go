package diagsnip

import "github.com/surge-lang/diagsnip/source"

// Builder assembles a Diagnostic incrementally. Construct with NewBuilder,
// chain the With* methods, and call Build to obtain the finished value.
type Builder[ID comparable] struct {
	d Diagnostic[ID]
}

// NewBuilder starts building a diagnostic of the given kind, with primary
// used as the header location when no label in that file exists.
func NewBuilder[ID comparable](kind Kind, primary source.Span[ID]) *Builder[ID] {
	return &Builder[ID]{d: Diagnostic[ID]{Kind: kind, Primary: primary, Config: DefaultConfig()}}
}

// WithCode sets the diagnostic's numeric code.
func (b *Builder[ID]) WithCode(code int) *Builder[ID] {
	b.d.Code = &code
	return b
}

// WithMessage sets the diagnostic's headline message.
func (b *Builder[ID]) WithMessage(msg string) *Builder[ID] {
	b.d.Message = msg
	return b
}

// WithHelp appends a help string.
func (b *Builder[ID]) WithHelp(help string) *Builder[ID] {
	b.d.Helps = append(b.d.Helps, help)
	return b
}

// WithNote appends a note string.
func (b *Builder[ID]) WithNote(note string) *Builder[ID] {
	b.d.Notes = append(b.d.Notes, note)
	return b
}

// WithLabel appends a label, in insertion order.
func (b *Builder[ID]) WithLabel(label Label[ID]) *Builder[ID] {
	b.d.Labels = append(b.d.Labels, label)
	return b
}

// WithLabels appends several labels at once.
func (b *Builder[ID]) WithLabels(labels ...Label[ID]) *Builder[ID] {
	b.d.Labels = append(b.d.Labels, labels...)
	return b
}

// WithConfig replaces the diagnostic's render configuration.
func (b *Builder[ID]) WithConfig(cfg Config) *Builder[ID] {
	b.d.Config = cfg
	return b
}

// Build returns the assembled Diagnostic.
func (b *Builder[ID]) Build() *Diagnostic[ID] {
	d := b.d
	return &d
}
