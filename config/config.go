package config

import (
	"encoding/json"
	"os"
)

// Config represents the application configuration
type Config struct {
	HorizonURL     string `json:"horizon_url"`
	EthRPCURL      string `json:"eth_rpc_url"`
	USDCToken      string `json:"usdc_token,omitempty"`
	RequestPath    string `json:"request_path,omitempty"`
	ConnectTimeout int    `json:"connect_timeout_seconds"`
	Logger         bool   `json:"logger"`
}

// Load reads the config from the specified path
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}

	return cfg
}

// Save writes the config to the specified path
func Save(path string, cfg Config) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0644)
}

// DefaultConfig returns a new configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		HorizonURL:     "https://horizon-testnet.stellar.org",
		EthRPCURL:      "https://ethereum-rpc.publicnode.com",
		ConnectTimeout: 15,
		Logger:         false,
	}
}

// LoadOrCreate loads config from path, or creates a default one if not found
func LoadOrCreate(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		// File doesn't exist, create default
		cfg := DefaultConfig()
		Save(path, cfg)
		return cfg
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		// Invalid config, return default
		return DefaultConfig()
	}

	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = DefaultConfig().ConnectTimeout
	}
	return cfg
}
