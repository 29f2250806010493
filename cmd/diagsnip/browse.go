package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/surge-lang/diagsnip"
	"github.com/surge-lang/diagsnip/source"
)

var browseSpans []string

func init() {
	browseCmd.Flags().StringArrayVar(&browseSpans, "span", nil, `a diagnostic to browse, as "start-end:kind:message" (repeatable)`)
}

var browseCmd = &cobra.Command{
	Use:   "browse <file>",
	Short: "Page through several diagnostics over one file with an interactive list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if len(browseSpans) == 0 {
			return fmt.Errorf("at least one --span is required")
		}

		cache := source.NewFileCache()
		if _, err := cache.Fetch(path); err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		cfg, err := applyRenderFlags(cmd, diagsnip.Config{IndexType: diagsnip.IndexByte})
		if err != nil {
			return err
		}

		bag := diagsnip.NewBag[string]()
		for _, spec := range browseSpans {
			d, err := parseBrowseSpan(cmd, path, spec, cfg)
			if err != nil {
				return err
			}
			bag.Add(d)
		}

		rendered := make([]string, bag.Len())
		labels := make([]string, bag.Len())
		for i, d := range bag.Items() {
			var buf bytes.Buffer
			if err := diagsnip.Write(d, cache, &buf); err != nil {
				return err
			}
			rendered[i] = buf.String()
			labels[i] = fmt.Sprintf("%2d. %s", i+1, strings.TrimSpace(d.Message))
		}

		m := newBrowseModel(labels, rendered)
		program := tea.NewProgram(m)
		_, err = program.Run()
		return err
	},
}

func parseBrowseSpan(cmd *cobra.Command, path, spec string, cfg diagsnip.Config) (*diagsnip.Diagnostic[string], error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid --span %q (want start-end:kind:message)", spec)
	}
	bounds := strings.SplitN(parts[0], "-", 2)
	if len(bounds) != 2 {
		return nil, fmt.Errorf("invalid --span %q (bad start-end)", spec)
	}
	start, err := strconv.ParseUint(bounds[0], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid --span %q: %w", spec, err)
	}
	end, err := strconv.ParseUint(bounds[1], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid --span %q: %w", spec, err)
	}

	kind, err := parseKind(parts[1])
	if err != nil {
		return nil, err
	}
	labelColor, err := resolveKindColor(cmd, kind)
	if err != nil {
		return nil, err
	}

	span := source.Span[string]{Source: path, Start: uint32(start), End: uint32(end)}
	d := diagsnip.NewBuilder[string](kind, span).
		WithMessage(parts[2]).
		WithLabel(diagsnip.NewLabel(span).WithColor(labelColor)).
		Build()
	d.Config = cfg
	return d, nil
}

// browseModel is a Bubble Tea model pairing a scrollable list of
// diagnostics with a viewport showing the selected one rendered in full.
type browseModel struct {
	labels   []string
	rendered []string
	cursor   int
	vp       viewport.Model
	width    int
	height   int
}

func newBrowseModel(labels, rendered []string) *browseModel {
	return &browseModel{
		labels:   labels,
		rendered: rendered,
		vp:       viewport.New(80, 20),
	}
}

func (m *browseModel) Init() tea.Cmd {
	m.syncViewport()
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - len(m.labels) - 2
		m.syncViewport()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.syncViewport()
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.labels)-1 {
				m.cursor++
				m.syncViewport()
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *browseModel) syncViewport() {
	if m.cursor < len(m.rendered) {
		m.vp.SetContent(m.rendered[m.cursor])
	}
}

func (m *browseModel) View() string {
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	plainStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	var b strings.Builder
	for i, label := range m.labels {
		text := truncateLabel(label, m.width)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + text))
		} else {
			b.WriteString(plainStyle.Render("  " + text))
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("-", max(m.width, 1)))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	return b.String()
}

func truncateLabel(value string, width int) string {
	if width <= 4 || runewidth.StringWidth(value) <= width {
		return value
	}
	return runewidth.Truncate(value, width-3, "...")
}
