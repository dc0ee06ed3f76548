package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
	"golang.org/x/text/language"

	"rardesc/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	ParserConfig struct {
		ResolveProperties bool     `yaml:"resolve_properties"`
		Languages         []string `yaml:"languages" validate:"dive,bcp47_language_tag"`
	}

	MergeConfig struct {
		UntypedMatch common.UntypedMatch `yaml:"untyped_match" validate:"gte=0"`
	}

	RenderConfig struct {
		Indent int                 `yaml:"indent" validate:"min=-1,max=8"`
		Format common.OutputFormat `yaml:"format" validate:"gte=0"`
	}

	OverlayConfig struct {
		Debounce time.Duration `yaml:"debounce" validate:"gte=0"`
	}

	ArchiveConfig struct {
		DescriptorPath        string `yaml:"descriptor_path" validate:"required"`
		FixZip                bool   `yaml:"fix_zip"`
		FileNameTransliterate bool   `yaml:"file_name_transliterate"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Parser    ParserConfig   `yaml:"parser"`
		Merge     MergeConfig    `yaml:"merge"`
		Render    RenderConfig   `yaml:"render"`
		Overlay   OverlayConfig  `yaml:"overlay"`
		Archive   ArchiveConfig  `yaml:"archive"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// Tags returns preferred languages in configured order. Entries are
// validated on load so parse errors are not expected here.
func (conf *ParserConfig) Tags() []language.Tag {
	tags := make([]language.Tag, 0, len(conf.Languages))
	for _, l := range conf.Languages {
		if t, err := language.Parse(l); err == nil {
			tags = append(tags, t)
		}
	}
	return tags
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
