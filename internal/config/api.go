package config

import "fmt"

// ApiConfig defines the bind address of the sync management API.
type ApiConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (cfg *ApiConfig) Validate() error {
	if cfg.Host == "" {
		return fmt.Errorf("api host cannot be empty")
	}
	if cfg.Port <= 0 || cfg.Port > maxPort {
		return fmt.Errorf("api port must be between 1 and %d", maxPort)
	}
	return nil
}
