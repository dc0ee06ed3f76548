package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rupor-github/gencfg"

	"rardesc/common"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Fatalf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Merge.UntypedMatch != common.UntypedMatchAny {
		t.Fatalf("UntypedMatch = %s, want any", cfg.Merge.UntypedMatch)
	}
	if cfg.Render.Indent != 2 || cfg.Render.Format != common.OutputFormatXml {
		t.Fatalf("unexpected render defaults %+v", cfg.Render)
	}
	if cfg.Overlay.Debounce != 250*time.Millisecond {
		t.Fatalf("Debounce = %v, want 250ms", cfg.Overlay.Debounce)
	}
	if cfg.Archive.DescriptorPath != "META-INF/ra.xml" || !cfg.Archive.FixZip {
		t.Fatalf("unexpected archive defaults %+v", cfg.Archive)
	}
	if len(cfg.Parser.Languages) != 1 || cfg.Parser.Languages[0] != "en" {
		t.Fatalf("unexpected languages %v", cfg.Parser.Languages)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
parser:
  resolve_properties: true
  languages: ["de-AT", "en"]
merge:
  untyped_match: strict
render:
  indent: -1
  format: tree
overlay:
  debounce: 1s
archive:
  descriptor_path: META-INF/custom-ra.xml
  fix_zip: false
  file_name_transliterate: true
logging:
  console:
    level: debug
`)
	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if !cfg.Parser.ResolveProperties {
		t.Fatalf("Expected ResolveProperties to be true")
	}
	if tags := cfg.Parser.Tags(); len(tags) != 2 || tags[0].String() != "de-AT" {
		t.Fatalf("unexpected tags %v", tags)
	}
	if cfg.Merge.UntypedMatch != common.UntypedMatchStrict {
		t.Fatalf("UntypedMatch = %s, want strict", cfg.Merge.UntypedMatch)
	}
	if cfg.Render.Indent != -1 || cfg.Render.Format != common.OutputFormatTree {
		t.Fatalf("unexpected render %+v", cfg.Render)
	}
	if cfg.Overlay.Debounce != time.Second {
		t.Fatalf("Debounce = %v", cfg.Overlay.Debounce)
	}
	if cfg.Archive.FixZip || !cfg.Archive.FileNameTransliterate || cfg.Archive.DescriptorPath != "META-INF/custom-ra.xml" {
		t.Fatalf("unexpected archive %+v", cfg.Archive)
	}
	// untouched sections keep template values
	if cfg.Logging.FileLogger.Level != "none" || cfg.Reporting.Destination == "" {
		t.Fatalf("defaults lost: %+v %+v", cfg.Logging, cfg.Reporting)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\nparser:\n  resolve_properties: true\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"bad version", "version: 2\n"},
		{"bad language", "version: 1\nparser:\n  languages: [\"not a tag\"]\n"},
		{"bad untyped match", "version: 1\nmerge:\n  untyped_match: sometimes\n"},
		{"bad indent", "version: 1\nrender:\n  indent: 20\n"},
		{"bad format", "version: 1\nrender:\n  format: html\n"},
		{"empty descriptor path", "version: 1\narchive:\n  descriptor_path: \"\"\n"},
		{"bad log level", "version: 1\nlogging:\n  console:\n    level: verbose\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Fatalf("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}
	if _, err := LoadConfiguration("", option); err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if _, err = unmarshalConfig(data, &Config{}, true); err != nil {
		t.Fatalf("Prepared config is not valid: %v", err)
	}
	if !strings.Contains(string(data), "descriptor_path: META-INF/ra.xml") {
		t.Fatalf("Prepared config misses archive section:\n%s", data)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Merge.UntypedMatch = common.UntypedMatchStrict

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "untyped_match: strict") || !strings.Contains(string(data), "debounce: 250ms") {
		t.Fatalf("enums and durations must dump as text:\n%s", data)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Merge.UntypedMatch != common.UntypedMatchStrict || cfg2.Overlay.Debounce != cfg.Overlay.Debounce {
		t.Fatalf("mismatch after dump/load: %+v", cfg2)
	}
}

func TestCleanFileName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"acme-jca", "acme-jca"},
		{"a" + string(os.PathSeparator) + "b", "ab"},
		{"..hidden", "hidden"},
		{"", badFileName},
		{"...", badFileName},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.want {
			t.Fatalf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOutputName(t *testing.T) {
	conf := ArchiveConfig{}
	if got := conf.OutputName("Acme JCA", ".xml"); got != "Acme JCA.xml" {
		t.Fatalf("unexpected name %q", got)
	}
	conf.FileNameTransliterate = true
	if got := conf.OutputName("Адаптер Acme", ".xml"); got != "adapter-acme.xml" {
		t.Fatalf("unexpected transliterated name %q", got)
	}
}
