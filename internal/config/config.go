// Package config loads the on-disk YAML configuration. Fields are pointers
// so that keys absent from the file never override CLI flag defaults.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for leakhound.
type FileConfig struct {
	Include       *string  `yaml:"include"`
	Exclude       *string  `yaml:"exclude"`
	MaxBytes      *int64   `yaml:"max_bytes"`
	Threads       *int     `yaml:"threads"`
	MinConfidence *float64 `yaml:"min_confidence"`
	NoColor       *bool    `yaml:"no_color"`
	NoCache       *bool    `yaml:"no_cache"`

	// Verification
	Verify        *bool   `yaml:"verify"`
	Region        *string `yaml:"region"`
	VerifyTimeout *string `yaml:"verify_timeout"`

	// Alerting
	TelegramToken  *string `yaml:"telegram_token"`
	TelegramChatID *string `yaml:"telegram_chat_id"`
	AlertInterval  *string `yaml:"alert_interval"`
}

// LoadFile parses the YAML file at path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal looks for a config file at the scan root, preferring the
// dotfile form. Absence of both is not an error.
func LoadLocal(root string) (FileConfig, error) {
	for _, name := range []string{".leakhound.yml", "leakhound.yml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, errors.New("no config file found")
}
