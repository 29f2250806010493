package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/surge-lang/diagsnip"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		input string
		want  diagsnip.Kind
	}{
		{"error", diagsnip.KindError},
		{"warning", diagsnip.KindWarning},
		{"advice", diagsnip.KindAdvice},
	}
	for _, tc := range cases {
		got, err := parseKind(tc.input)
		if err != nil {
			t.Fatalf("parseKind(%q) error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("parseKind(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseKindRejectsUnknown(t *testing.T) {
	if _, err := parseKind("fatal"); err == nil {
		t.Fatalf("parseKind(\"fatal\") expected an error, got nil")
	}
}

func TestLoadProjectConfigDefaultsCharSet(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "diagsnip.toml")
	data := `[render]
[render.palette]
error = 1
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write diagsnip.toml: %v", err)
	}
	cfg, err := loadProjectConfig(path)
	if err != nil {
		t.Fatalf("loadProjectConfig: %v", err)
	}
	if cfg.Render.CharSet != "unicode" {
		t.Fatalf("Render.CharSet = %q, want %q", cfg.Render.CharSet, "unicode")
	}
	if cfg.Render.Palette.Error != 1 {
		t.Fatalf("Render.Palette.Error = %d, want 1", cfg.Render.Palette.Error)
	}
}

func TestLoadProjectConfigHonorsExplicitCharSet(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "diagsnip.toml")
	data := `[render]
char_set = "ascii"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write diagsnip.toml: %v", err)
	}
	cfg, err := loadProjectConfig(path)
	if err != nil {
		t.Fatalf("loadProjectConfig: %v", err)
	}
	if cfg.Render.CharSet != "ascii" {
		t.Fatalf("Render.CharSet = %q, want %q", cfg.Render.CharSet, "ascii")
	}
}

func TestLoadProjectConfigRejectsMalformedTOML(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "diagsnip.toml")
	if err := os.WriteFile(path, []byte("this is not [ valid toml"), 0o600); err != nil {
		t.Fatalf("write diagsnip.toml: %v", err)
	}
	if _, err := loadProjectConfig(path); err == nil {
		t.Fatalf("loadProjectConfig expected an error for malformed TOML, got nil")
	}
}

func TestPaletteSpecFallsBackWhenZero(t *testing.T) {
	var spec paletteSpec
	fallback := diagsnip.KindError.Color()
	if got := spec.errorColor(fallback); got != fallback {
		t.Fatalf("errorColor fallback = %v, want %v", got, fallback)
	}
}

// browseTestCmd returns browseCmd with its inherited persistent flags
// (--color, --char-set, --tab-width, --config) merged in, the way cobra
// merges them during Execute -- needed since these tests call
// parseBrowseSpan directly rather than going through rootCmd.Execute.
func browseTestCmd(t *testing.T) *cobra.Command {
	t.Helper()
	if err := browseCmd.ParseFlags(nil); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	return browseCmd
}

func TestParseBrowseSpanValid(t *testing.T) {
	cmd := browseTestCmd(t)
	d, err := parseBrowseSpan(cmd, "main.sg", "10-14:error:unexpected token", diagsnip.DefaultConfig())
	if err != nil {
		t.Fatalf("parseBrowseSpan error: %v", err)
	}
	if d.Kind != diagsnip.KindError {
		t.Fatalf("Kind = %v, want KindError", d.Kind)
	}
	if d.Message != "unexpected token" {
		t.Fatalf("Message = %q, want %q", d.Message, "unexpected token")
	}
	if len(d.Labels) != 1 {
		t.Fatalf("len(Labels) = %d, want 1", len(d.Labels))
	}
	if d.Primary.Start != 10 || d.Primary.End != 14 {
		t.Fatalf("Primary span = %+v, want {10 14}", d.Primary)
	}
}

func TestParseBrowseSpanRejectsMalformed(t *testing.T) {
	cmd := browseTestCmd(t)
	cases := []string{
		"not-a-span",
		"10:error:missing end",
		"10-14:unknown:bad kind",
	}
	for _, spec := range cases {
		if _, err := parseBrowseSpan(cmd, "main.sg", spec, diagsnip.DefaultConfig()); err == nil {
			t.Fatalf("parseBrowseSpan(%q) expected an error, got nil", spec)
		}
	}
}
