package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "data/badger", cfg.DataDir)
	assert.Equal(t, "0x79fcdef22feed20eddacbb2587640e45491b757f", cfg.MferContract)
	assert.Equal(t, "0xE3086852A4B125803C815a158249ae468A3254Ca", cfg.CoinContract)
	assert.Equal(t, 15*time.Second, cfg.ExternalTimeout)
	assert.Equal(t, "data/pets", cfg.PetStateDir)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("ALCHEMY_API_KEY", "alchemy-key")
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("EXTERNAL_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, "alchemy-key", cfg.AlchemyAPIKey)
	assert.Equal(t, "openai-key", cfg.OpenAIAPIKey)
	assert.Equal(t, 3*time.Second, cfg.ExternalTimeout)
}
