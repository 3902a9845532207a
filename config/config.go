// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds everything the application reads from the environment.
type Config struct {
	ListenAddr string `env:"LISTEN_ADDR,default=:8080"`
	DataDir    string `env:"DATA_DIR,default=data/badger"`

	// Alchemy NFT API credential; ownership lookups degrade to an empty
	// token list when unset.
	AlchemyAPIKey string `env:"ALCHEMY_API_KEY"`
	AlchemyURL    string `env:"ALCHEMY_URL,default=https://eth-mainnet.g.alchemy.com"`

	// OpenAI moderation credential; required for creating posts.
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIURL    string `env:"OPENAI_URL,default=https://api.openai.com"`

	// Fixed collection gating posts and the coin used for the balance badge.
	MferContract string `env:"MFER_CONTRACT,default=0x79fcdef22feed20eddacbb2587640e45491b757f"`
	CoinContract string `env:"COIN_CONTRACT,default=0xE3086852A4B125803C815a158249ae468A3254Ca"`

	// Timeout applied to moderation and ownership calls.
	ExternalTimeout time.Duration `env:"EXTERNAL_TIMEOUT,default=15s"`

	// Directory for per-wallet pet state written by the client app.
	PetStateDir string `env:"PET_STATE_DIR,default=data/pets"`
}

// Load reads an optional .env file and decodes the environment into a Config.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %v", err)
	}
	return &cfg, nil
}
