// Package config holds the settings of the softhyphen command.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"github.com/npillmayer/softhyphen"
)

//go:embed config.yaml
var defaultConfig []byte

type (
	HyphenationConfig struct {
		Enabled          bool     `yaml:"enabled"`
		Hyphen           string   `yaml:"hyphen"`
		MinLength        int      `yaml:"min_length"`
		MinBefore        int      `yaml:"min_before"`
		MinAfter         int      `yaml:"min_after"`
		TitleCase        bool     `yaml:"title_case"`
		Compounds        bool     `yaml:"compounds"`
		AllCaps          bool     `yaml:"all_caps"`
		Headings         bool     `yaml:"headings"`
		CustomExceptions []string `yaml:"custom_exceptions"`
	}

	TokenizerConfig struct {
		MaxWordRun int `yaml:"max_word_run"`
	}

	IgnoreConfig struct {
		Tags    []string `yaml:"tags"`
		Classes []string `yaml:"classes"`
	}

	Settings struct {
		Language    string            `yaml:"language"`
		PatternDir  string            `yaml:"pattern_dir"`
		Hyphenation HyphenationConfig `yaml:"hyphenation"`
		Tokenizer   TokenizerConfig   `yaml:"tokenizer"`
		Ignore      IgnoreConfig      `yaml:"ignore"`
		Logging     LoggingConfig     `yaml:"logging"`
	}
)

func unmarshalSettings(data []byte, s *Settings) (*Settings, error) {
	// unknown fields are most likely typos, so we do not use yaml.Unmarshal
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return s, nil
}

// Default returns the built-in settings.
func Default() *Settings {
	s, err := unmarshalSettings(defaultConfig, &Settings{})
	if err != nil {
		panic(err) // embedded configuration is broken
	}
	return s
}

// LoadConfiguration reads settings from the file at path, superimposing its
// values on top of the defaults, and validates the result. An empty path
// returns the defaults.
func LoadConfiguration(path string) (*Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data, s)
}

// Parse superimposes YAML data on base and validates the result.
func Parse(data []byte, base *Settings) (*Settings, error) {
	s, err := unmarshalSettings(data, base)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks all settings and reports every problem found.
func (s *Settings) Validate() error {
	var err error
	if s.Language == "" {
		err = multierr.Append(err, errors.New("language must not be empty"))
	}
	h := s.Hyphenation
	if h.MinLength < 0 || h.MinBefore < 0 || h.MinAfter < 0 {
		err = multierr.Append(err, fmt.Errorf("hyphenation limits must not be negative: %d/%d/%d",
			h.MinLength, h.MinBefore, h.MinAfter))
	}
	if h.Enabled && h.Hyphen == "" {
		err = multierr.Append(err, errors.New("hyphen must not be empty"))
	}
	if s.Tokenizer.MaxWordRun < 0 {
		err = multierr.Append(err, fmt.Errorf("max_word_run must not be negative: %d", s.Tokenizer.MaxWordRun))
	}
	if level := s.Logging.Console.Level; !slices.Contains([]string{"none", "normal", "debug"}, level) {
		err = multierr.Append(err, fmt.Errorf("unknown console log level %q", level))
	}
	return err
}

// HyphenOptions converts the settings to options for a Hyphenator. If
// hyphenation is disabled, the options turn it off.
func (s *Settings) HyphenOptions() softhyphen.Options {
	h := s.Hyphenation
	opts := softhyphen.Options{
		Hyphen:         h.Hyphen,
		AllowTitleCase: h.TitleCase,
		MinLength:      h.MinLength,
		MinBefore:      h.MinBefore,
		MinAfter:       h.MinAfter,
	}
	if !h.Enabled {
		opts.MinLength = 0
	}
	return opts
}

// Prepare returns the default configuration file.
func Prepare() []byte {
	return slices.Clone(defaultConfig)
}

// Dump marshals settings to YAML.
func Dump(s *Settings) ([]byte, error) {
	data, err := yaml.Marshal(*s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
