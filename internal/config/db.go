package config

import "fmt"

type DbConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Address  string `mapstructure:"address"`
	DbName   string `mapstructure:"db-name"`
}

func (cfg *DbConfig) Validate() error {
	if cfg.Username == "" {
		return fmt.Errorf("missing db username")
	}
	if cfg.Password == "" {
		return fmt.Errorf("missing db password")
	}
	if cfg.Address == "" {
		return fmt.Errorf("missing db address")
	}
	if cfg.DbName == "" {
		return fmt.Errorf("missing db name")
	}
	return nil
}
