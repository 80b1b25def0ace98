// Package system provides infrastructure for tool-level configuration.
// This covers the output layout read from .togglegen.yaml, TOGGLEGEN_*
// environment variables and command-line flags.
package system

import (
	"fmt"
	"path"
	"strings"

	"github.com/reglet-dev/togglegen/internal/domain/values"
	"github.com/spf13/viper"
)

// Config keys, shared by viper defaults, flag bindings and the config file.
const (
	KeyIncludeDir          = "include_dir"
	KeySourceDir           = "source_dir"
	KeyCharacterizationDir = "characterization_dir"
	KeyHeaderName          = "header_name"
	KeySourceName          = "source_name"
	KeyDefaultCharID       = "default_char_id"
	KeyResetFunction       = "reset_function"
	KeyOutputRoot          = "output_root"
)

// Config is the output layout of a generate run.
// This is tool configuration, separate from the option and profile documents.
type Config struct {
	// OutputRoot is the directory every other path is relative to.
	OutputRoot string `mapstructure:"output_root" yaml:"output_root"`

	IncludeDir          string `mapstructure:"include_dir" yaml:"include_dir"`
	SourceDir           string `mapstructure:"source_dir" yaml:"source_dir"`
	CharacterizationDir string `mapstructure:"characterization_dir" yaml:"characterization_dir"`
	HeaderName          string `mapstructure:"header_name" yaml:"header_name"`
	SourceName          string `mapstructure:"source_name" yaml:"source_name"`

	// DefaultCharID is the fallback CHAR_ID of the master header.
	// Empty means the first declared profile.
	DefaultCharID string `mapstructure:"default_char_id" yaml:"default_char_id"`

	ResetFunction string `mapstructure:"reset_function" yaml:"reset_function"`
}

// DefaultConfig returns the layout of the original toggle generator.
func DefaultConfig() Config {
	return Config{
		OutputRoot:          ".",
		IncludeDir:          "include",
		SourceDir:           "src",
		CharacterizationDir: "characterizations",
		HeaderName:          "toggle.h",
		SourceName:          "toggle.c",
		ResetFunction:       "toggle_test_reset",
	}
}

// RegisterDefaults seeds v with the default layout so that environment
// variables are honoured by Unmarshal even without a config file.
func RegisterDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault(KeyOutputRoot, d.OutputRoot)
	v.SetDefault(KeyIncludeDir, d.IncludeDir)
	v.SetDefault(KeySourceDir, d.SourceDir)
	v.SetDefault(KeyCharacterizationDir, d.CharacterizationDir)
	v.SetDefault(KeyHeaderName, d.HeaderName)
	v.SetDefault(KeySourceName, d.SourceName)
	v.SetDefault(KeyDefaultCharID, d.DefaultCharID)
	v.SetDefault(KeyResetFunction, d.ResetFunction)
}

// FromViper unmarshals and validates the layout held by v.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the layout for values that would produce broken C.
func (c Config) Validate() error {
	for key, dir := range map[string]string{
		KeyIncludeDir:          c.IncludeDir,
		KeySourceDir:           c.SourceDir,
		KeyCharacterizationDir: c.CharacterizationDir,
	} {
		if dir == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
		if path.IsAbs(dir) || strings.HasPrefix(path.Clean(dir), "..") {
			return fmt.Errorf("%s must be relative to the output root: %q", key, dir)
		}
	}

	for key, name := range map[string]string{
		KeyHeaderName: c.HeaderName,
		KeySourceName: c.SourceName,
	} {
		if name == "" || strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%s must be a plain file name: %q", key, name)
		}
	}

	if !values.IsIdentifier(c.ResetFunction) {
		return fmt.Errorf("%s must be a C identifier: %q", KeyResetFunction, c.ResetFunction)
	}
	if c.DefaultCharID != "" && !values.IsIdentifier(c.DefaultCharID) {
		return fmt.Errorf("%s must be a C identifier: %q", KeyDefaultCharID, c.DefaultCharID)
	}
	return nil
}

// MasterHeaderPath is the master header, relative to the output root.
func (c Config) MasterHeaderPath() string {
	return path.Join(c.IncludeDir, c.HeaderName)
}

// MasterSourcePath is the master source, relative to the output root.
func (c Config) MasterSourcePath() string {
	return path.Join(c.SourceDir, c.SourceName)
}

// ProfileHeaderPath is a profile's header, relative to the output root.
func (c Config) ProfileHeaderPath(id string) string {
	return path.Join(c.IncludeDir, c.ProfileInclude(id, ".h"))
}

// ProfileSourcePath is a profile's source, relative to the output root.
func (c Config) ProfileSourcePath(id string) string {
	return path.Join(c.SourceDir, c.ProfileInclude(id, ".c"))
}

// ProfileInclude is the #include path of a profile file as seen from the
// include or source directory.
func (c Config) ProfileInclude(id, ext string) string {
	return path.Join(c.CharacterizationDir, strings.ToLower(id)+ext)
}
