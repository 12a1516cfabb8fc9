package composition

import (
	"fmt"
	"time"
)

type Config struct {
	SearchURL string        `mapstructure:"search_url"`
	APIKey    string        `mapstructure:"api_key"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		SearchURL: "https://api.nal.usda.gov/fdc/v1/foods/search",
		Timeout:   20 * time.Second,
	}
}

func (c *Config) Validate() error {
	if c.SearchURL == "" {
		return fmt.Errorf("search_url is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	// APIKey is optional: absence disables the adapter, it does not fail it.
	return nil
}
