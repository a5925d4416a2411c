package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/seek/internal/domain"
	"github.com/aalvaropc/seek/internal/infra/workspacefinder"
)

// LoadFile parses a seek.yaml file on top of defaults.
func LoadFile(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}

// Load resolves the effective configuration for a workspace root:
// defaults < seek.yaml < SEEK_* environment.
// An empty root or a root without seek.yaml yields defaults plus environment.
func Load(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if root != "" {
		path := filepath.Join(root, workspacefinder.ConfigFile)
		loaded, err := LoadFile(path)
		switch {
		case err == nil:
			cfg = loaded
		case domain.IsKind(err, domain.KindNotFound) && errors.Is(err, os.ErrNotExist):
			// no file: keep defaults
		default:
			return cfg, err
		}
	}

	return ApplyEnv(cfg, nil)
}
