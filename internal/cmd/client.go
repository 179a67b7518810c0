package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gravitrone/eligibility-mapper/cli/internal/api"
	"github.com/gravitrone/eligibility-mapper/cli/internal/config"
)

// Logger receives request logs from every command client. main swaps it for
// the file logger once flags are parsed.
var Logger = zap.NewNop()

// ConfigPath overrides the config file location when non-empty. main sets it
// from the persistent --config flag.
var ConfigPath string

// LoadConfig reads ConfigPath, or the default location when it is empty.
func LoadConfig() (*config.Config, error) {
	if ConfigPath != "" {
		return config.LoadFile(ConfigPath)
	}
	return config.Load()
}

func saveConfig(cfg *config.Config) (string, error) {
	if ConfigPath != "" {
		return ConfigPath, cfg.SaveFile(ConfigPath)
	}
	return config.Path(), cfg.Save()
}

// loadClient builds an API client from the saved config.
func loadClient() (*api.Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("not logged in: %w", err)
	}
	client := api.NewClientForServer(cfg.ServerURL, cfg.APIKey)
	client.SetLogger(Logger)
	return client, nil
}
