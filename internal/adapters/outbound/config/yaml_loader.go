package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/IanSimon23/doccheck/internal/domain"
)

const fileName = ".doccheck.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .doccheck.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .doccheck.yaml from rootPath. A missing file yields the
// default config; a malformed or invalid one is an error.
func (l *YAMLLoader) Load(rootPath string) (domain.ToolConfig, error) {
	data, err := os.ReadFile(filepath.Join(rootPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultToolConfig(), nil
		}
		return domain.ToolConfig{}, err
	}

	cfg := domain.DefaultToolConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ToolConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.ToolConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
