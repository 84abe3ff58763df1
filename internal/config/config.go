// Package config holds the formkit CLI settings: defaults, an optional YAML
// file, and validation. Flags are layered on top by the command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration.
type Config struct {
	Addr          string `yaml:"addr" validate:"required,hostname_port"`
	LogLevel      string `yaml:"logLevel" validate:"omitempty,oneof=trace debug info warn error"`
	HumanLogs     bool   `yaml:"humanLogs"`
	Catalog       string `yaml:"catalog,omitempty"`
	Theme         string `yaml:"theme,omitempty"`
	ThemeVariant  string `yaml:"themeVariant,omitempty"`
	InlineRuntime bool   `yaml:"inlineRuntime,omitempty"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Addr:      ":8080",
		LogLevel:  "info",
		HumanLogs: true,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty file decodes to io.EOF and keeps the defaults.
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		if line := extractLine(err); line > 0 {
			return Config{}, fmt.Errorf("config: parse %s (line %d): %w", path, line, err)
		}
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field rules and returns the first violation.
func (c Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		return &FieldError{Field: yamlishFieldName(ve.Field()), Tag: ve.Tag(), Value: fmt.Sprint(ve.Value())}
	}
	return err
}

// FieldError reports an invalid setting by its YAML name.
type FieldError struct {
	Field string
	Tag   string
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: value %q failed validation for tag '%s'", e.Field, e.Value, e.Tag)
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

func yamlishFieldName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
