package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".tgscrape"

// xdgConfigFile is the file name looked up inside XDGConfigDir.
const xdgConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .tgscrape configuration file.
// Every field is optional; zero values leave the corresponding default alone.
type File struct {
	Channel        string        `yaml:"channel,omitempty"`
	BaseURL        string        `yaml:"baseURL,omitempty"`
	Output         string        `yaml:"output,omitempty"`
	Timeout        time.Duration `yaml:"timeout,omitempty"`
	MaxPages       int           `yaml:"maxPages,omitempty"`
	Delay          time.Duration `yaml:"delay,omitempty"`
	UserAgent      string        `yaml:"userAgent,omitempty"`
	Accept         string        `yaml:"accept,omitempty"`
	AcceptLanguage string        `yaml:"acceptLanguage,omitempty"`
	MaxBodySize    int64         `yaml:"maxBodySize,omitempty"`
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// ApplyTo overrides cfg with every non-zero field of the file.
func (f *File) ApplyTo(cfg *Config) {
	if f.Channel != "" {
		cfg.Channel = f.Channel
	}
	if f.BaseURL != "" {
		cfg.BaseURL = f.BaseURL
	}
	if f.Output != "" {
		cfg.OutputPath = f.Output
	}
	if f.Timeout != 0 {
		cfg.Timeout = f.Timeout
	}
	if f.MaxPages != 0 {
		cfg.MaxPages = f.MaxPages
	}
	if f.Delay != 0 {
		cfg.Delay = f.Delay
	}
	if f.UserAgent != "" {
		cfg.UserAgent = f.UserAgent
	}
	if f.Accept != "" {
		cfg.Accept = f.Accept
	}
	if f.AcceptLanguage != "" {
		cfg.AcceptLanguage = f.AcceptLanguage
	}
	if f.MaxBodySize != 0 {
		cfg.MaxBodySize = f.MaxBodySize
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .tgscrape in the current directory
// 3. Look for config.yaml in the XDG config directory
// 4. Look for .tgscrape in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), xdgConfigFile))
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
