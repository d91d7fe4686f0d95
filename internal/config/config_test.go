package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-rules/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "5E", cfg.Rules.Namespace)
	assert.Equal(t, 0, cfg.Rules.ProficiencyBonus)
	assert.Equal(t, int64(0), cfg.Dice.Seed)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DNDRULES_NAMESPACE", "HOMEBREW")
	t.Setenv("DNDRULES_PROFICIENCY_BONUS", "3")
	t.Setenv("DNDRULES_SEED", "42")
	t.Setenv("DNDRULES_LOG_LEVEL", "debug")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "HOMEBREW", cfg.Rules.Namespace)
	assert.Equal(t, 3, cfg.Rules.ProficiencyBonus)
	assert.Equal(t, int64(42), cfg.Dice.Seed)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad seed", key: "DNDRULES_SEED", value: "lucky"},
		{name: "negative proficiency bonus", key: "DNDRULES_PROFICIENCY_BONUS", value: "-1"},
		{name: "unknown log level", key: "DNDRULES_LOG_LEVEL", value: "verbose"},
		{name: "blank namespace", key: "DNDRULES_NAMESPACE", value: "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
