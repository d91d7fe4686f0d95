package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	Rules RulesConfig
	Dice  DiceConfig
	Log   LogConfig
}

// RulesConfig selects the rule pack creatures are built against
type RulesConfig struct {
	Namespace string `env:"DNDRULES_NAMESPACE" envDefault:"5E"`

	// ProficiencyBonus overrides the level derived bonus when positive
	ProficiencyBonus int `env:"DNDRULES_PROFICIENCY_BONUS" envDefault:"0"`
}

// DiceConfig holds dice source configuration
type DiceConfig struct {
	Seed int64 `env:"DNDRULES_SEED" envDefault:"0"` // 0 means random
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `env:"DNDRULES_LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Validate
	if strings.TrimSpace(cfg.Rules.Namespace) == "" {
		return nil, fmt.Errorf("DNDRULES_NAMESPACE must not be empty")
	}
	if cfg.Rules.ProficiencyBonus < 0 {
		return nil, fmt.Errorf("DNDRULES_PROFICIENCY_BONUS must not be negative, got %d", cfg.Rules.ProficiencyBonus)
	}
	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseLevel converts a level name to a slog level
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("DNDRULES_LOG_LEVEL %q: %w", level, err)
	}
	return l, nil
}

// SlogLevel returns the configured log level
func (c *LogConfig) SlogLevel() slog.Level {
	l, err := ParseLevel(c.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}
