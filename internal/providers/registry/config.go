package registry

import (
	"fmt"
	"time"
)

type Config struct {
	BaseURL     string        `mapstructure:"base_url"`
	TaxonomyURL string        `mapstructure:"taxonomy_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	PageSize    int           `mapstructure:"page_size"`
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:     "https://world.openfoodfacts.org/api/v2",
		TaxonomyURL: "https://static.openfoodfacts.org/data/taxonomies/additives.json",
		Timeout:     15 * time.Second,
		PageSize:    3,
	}
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.TaxonomyURL == "" {
		return fmt.Errorf("taxonomy_url is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive")
	}
	return nil
}
