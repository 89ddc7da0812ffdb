package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bbible3/chain-heal/internal/chain"
	"github.com/bbible3/chain-heal/internal/model"
)

// ChainHeal holds runtime configuration for the chainheal command.
// Spell values are positional arguments and are not part of the file.
type ChainHeal struct {
	LogLevel   string `yaml:"log_level"`   // debug|info|warn|error
	CasterName string `yaml:"caster_name"` // record name that marks the caster
	MaxJumps   int    `yaml:"max_jumps"`   // ceiling for numberOfJumps
	TotalLabel string `yaml:"total_label"` // label of the last report line
}

// DefaultChainHeal returns ChainHeal config with sensible defaults.
func DefaultChainHeal() ChainHeal {
	return ChainHeal{
		LogLevel:   "info",
		CasterName: model.DefaultCasterName,
		MaxJumps:   chain.DefaultMaxJumps,
		TotalLabel: chain.DefaultTotalLabel,
	}
}

// LoadChainHeal loads chainheal config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadChainHeal(path string) (ChainHeal, error) {
	cfg := DefaultChainHeal()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.CasterName == "" {
		return cfg, fmt.Errorf("config %s: caster_name must not be empty", path)
	}
	if cfg.MaxJumps < 1 {
		return cfg, fmt.Errorf("config %s: max_jumps must be >= 1, got %d", path, cfg.MaxJumps)
	}

	return cfg, nil
}
