// Package config loads YAML configuration files for src2pdf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-src2pdf/internal/fileutil"
	"github.com/alnah/go-src2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// Config holds all file-based configuration for document generation.
// Flags override config values; config values override defaults.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Select SelectConfig `yaml:"select"`
	Render RenderConfig `yaml:"render"`
	Page   PageConfig   `yaml:"page"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default scan directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultPath string `yaml:"defaultPath"` // Default output PDF path (empty = output.pdf)
}

// SelectConfig defines file selection options.
type SelectConfig struct {
	Extensions      []string `yaml:"extensions"`      // Dot-prefixed extensions to include
	ExcludeSuffixes []string `yaml:"excludeSuffixes"` // Filename endings to drop
}

// RenderConfig defines highlighting and font options.
type RenderConfig struct {
	Style       string `yaml:"style"`       // Chroma style name (empty = colorful)
	FontPath    string `yaml:"fontPath"`    // TTF to embed (empty = built-in Courier)
	FontSize    int    `yaml:"fontSize"`    // Points (0 = default 10)
	LineNumbers *bool  `yaml:"lineNumbers"` // nil = default (enabled)
	PagePerFile bool   `yaml:"pagePerFile"` // Start every file on a fresh page
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal" (empty = a4)
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (empty = portrait)
	Margin      float64 `yaml:"margin"`      // inches (0 = default 0.5)
}

// Validate performs structural checks. Semantic validation (page sizes,
// font bounds, style names) belongs to the generation service, which is
// the single authority on those rules. All failures wrap ErrConfigInvalid
// so callers can classify them as configuration errors.
func (c *Config) Validate() error {
	for _, ext := range c.Select.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: select.extensions: %q must be dot-prefixed", ErrConfigInvalid, ext)
		}
	}
	if c.Render.FontSize < 0 {
		return fmt.Errorf("%w: render.fontSize: must not be negative, got %d", ErrConfigInvalid, c.Render.FontSize)
	}
	if c.Page.Margin < 0 {
		return fmt.Errorf("%w: page.margin: must not be negative, got %.2f", ErrConfigInvalid, c.Page.Margin)
	}
	return nil
}

// DefaultConfig returns a neutral configuration with nothing set.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/src2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "src2pdf", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
