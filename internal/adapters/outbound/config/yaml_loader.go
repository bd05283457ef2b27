package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/stylegate/stylegate/internal/domain"
)

const fileName = ".stylegate.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .stylegate.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .stylegate.yaml from projectPath. A missing file yields the
// built-in defaults. Explicit values overlay the defaults; unrecognized keys
// are ignored.
func (l *YAMLLoader) Load(projectPath string) (domain.CheckConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultCheckConfig(), nil
		}
		return domain.CheckConfig{}, err
	}

	var cfg domain.CheckConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.CheckConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	merged := domain.DefaultCheckConfig().Merge(cfg)

	// Validate after merging -- catches typos in the user's raw input while
	// still letting partial files lean on the defaults.
	if err := merged.Validate(); err != nil {
		return domain.CheckConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return merged, nil
}
